// Package bundle models the bundler configuration the dev server produces.
//
// The configuration is a typed tree ([Config]) rather than an untyped map so
// that shape mismatches are caught at compile time. [Merge] combines two
// configurations: nested structs and maps merge key-wise, lists concatenate
// and non-zero scalars of the overlay win. Plugins are opaque descriptors
// ([Plugin]) consumed by the bundler; this package only builds them.
package bundle
