// Package httpapi exposes the poll backend over HTTP/JSON using gin.
//
// Routes:
//
//	POST /api/user   register {pseudo, email}
//	POST /api/login  log in {email}
//	GET  /api/votes  list all votes, newest first
//	POST /api/vote   cast {user_id, choice}
//	GET  /health     liveness probe
//
// Error responses are plain text so that clients can show them as-is.
package httpapi
