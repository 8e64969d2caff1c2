// Package web hosts the chart page over HTTP.
//
// Every browser tab gets its own [view.Controller], found through a session
// cookie. The page is rendered on the server from the controller state; the
// only script on it keeps the Generate button disabled while the username
// field is empty and submits the form when a theme is picked.
//
// Routes:
//
//	GET  /            the page
//	POST /submit      start a fetch for the posted username
//	POST /theme       select the posted theme, redrawing a shown chart
//	GET  /chart.png   the drawn chart, inline
//	GET  /download    the drawn chart as an attachment
//	POST /share       upload the chart and redirect to the share intent
//	GET  /healthz     liveness
//
// Sessions are kept in memory only and dropped after a period without
// requests.
package web
