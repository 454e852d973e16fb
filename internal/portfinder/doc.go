// Package portfinder discovers a free TCP port by probing candidates
// sequentially upward from a start port.
//
// The scan is bounded twice: by [Finder.HighestPort] and by
// [Finder.MaxAttempts]. An occupied candidate is skipped; any other socket
// error aborts the scan. Every outcome is a single [Result].
package portfinder
