// Package chart draws a contribution calendar onto a [Canvas].
//
// The image has a header with the username, then one block per year (newest
// first, as the API lists them) and a footer line:
//
//	@octocat
//
//	2024: 812 Contributions
//	Jan   Feb   Mar ...
//	▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪▪  (7 rows, one per weekday)
//
//	Made by ...
//
// Each cell is a day, filled with the theme grade for that day's intensity.
// Geometry is expressed in CSS pixels and multiplied by the renderer scale,
// 2 by default, so the output is sharp on high density displays.
package chart
