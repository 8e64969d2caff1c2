// Package httputil provides the HTTP client plumbing shared by the
// contributions fetcher and the share uploader.
//
// # Overview
//
//   - [NewClient]: an *http.Client whose transport reports every request to
//     the registered [observability.HTTPHooks]
//   - [CheckStatus]: collapses a response status into nil or an error
//   - [Canceled]: tells a cancelled request apart from a failed one
//
// The client sets no timeout. A request lives exactly as long as its
// context, so a hung endpoint leaves the caller waiting until the context is
// cancelled. Neither retries nor caches responses.
package httputil
