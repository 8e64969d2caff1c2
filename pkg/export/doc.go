// Package export turns a drawn [chart.Canvas] into something the visitor can
// keep: a PNG file, or a link on an image host ready to share.
//
// Both helpers treat a missing or blank canvas as "nothing to export" and
// return without error.
package export
