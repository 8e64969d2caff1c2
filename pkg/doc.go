// Package pkg provides the libraries behind contribchart, which draws a
// GitHub user's whole contribution history into one themed image.
//
// # Overview
//
// The data flows through these packages:
//
//	contributions API
//	       ↓
//	   [contrib] (fetch and decode the calendar)
//	       ↓
//	   [view] (session state machine: idle, loading, ready, not found, failed)
//	       ↓
//	   [render/chart] (draw years onto a canvas using a [theme] palette)
//	       ↓
//	   [export] (download as PNG, or upload and build a share link)
//
// [web] hosts the generator page on top of [view]. Supporting packages are
// [errors] (coded errors and the user-facing messages), [httputil]
// (instrumented HTTP client), [observability] (hooks for logging and
// metrics), [fonts] and [buildinfo].
package pkg
