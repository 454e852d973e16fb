// Package http implements the preview server of the development
// configuration.
//
// The router is built from a resolved dev server descriptor: the bundler
// output is served under the public path with a history API fallback,
// static assets are served from the static directory without dotfiles,
// proxy rules forward requests to their targets and responses are
// compressed when the descriptor asks for it. Access logging and trace IDs
// are handled by middleware before requests reach the file handlers.
package http
