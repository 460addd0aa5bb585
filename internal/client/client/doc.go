// Package client is the sondage backend API as seen from the terminal client.
//
// Client is the transport-agnostic contract; HTTPClient implements it over
// JSON/HTTP against the four backend endpoints:
//
//	POST /api/login   {email}            -> User
//	POST /api/user    {pseudo, email}    -> User
//	GET  /api/votes                      -> []Vote
//	POST /api/vote    {user_id, choice}  -> Vote
//
// # Error Handling
//
// Non-2xx responses are returned as *StatusError carrying the status code
// and the raw body. StatusError matches ErrNotFound (404) and ErrConflict
// (409) with errors.Is. Network failures wrap ErrUnavailable.
//
// No retries are made and no timeout is imposed beyond the caller's context.
package client
