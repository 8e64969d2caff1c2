// Package view owns the state of one chart session and drives the fetch and
// draw collaborators.
//
// A [Controller] is what sits behind a single page or terminal session:
//
//	Idle ──Begin──▶ Loading ──Resolve──▶ Ready | NotFound | Failed
//	                   ▲                          │
//	                   └──────────Begin───────────┘
//
// Entering Ready mounts a canvas, draws the chart once and takes focus away
// from the username field. Changing the theme while a canvas is mounted
// redraws synchronously. No state is terminal; every state accepts a new
// submission.
//
// Fetches run outside the controller lock. Nothing is cancelled, so when
// submissions overlap the response that resolves last determines the state.
package view
