// Package urlbuilder assembles Google Static Maps API URLs from map
// options, markers, and paths. It is a pure request-construction layer: no
// network I/O happens here, and URL generation either returns a valid,
// deterministic query string or fails with a distinct sentinel error before
// any request could be attempted.
//
// Two wire-format quirks are preserved on purpose for compatibility with
// the request format this package replicates:
//
//   - a marker's size is only serialized when the marker also has a color;
//   - path colors are always rendered in the 24-bit form, dropping alpha,
//     even though the API itself accepts alpha on paths.
//
// Builders are plain mutable values with no internal synchronization.
// Callers sharing one across goroutines must serialize access themselves.
package urlbuilder
