// Package cli is the interactive sondage terminal client.
//
// It wires configuration, the local session store, the backend API client and
// a small REPL. The REPL mirrors a two-page application:
//
//	/      login or register
//	/vote  the poll: question, totals, your ballot, every vote cast
//
// /vote is guarded: without a stored session the router sends the user back
// to /. Any unknown path also resolves to /.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
