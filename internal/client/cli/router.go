package cli

import "context"

const (
	RouteAuth = "/"
	RouteVote = "/vote"
)

// resolve maps a requested path to a known route; anything unknown is /.
func resolve(path string) string {
	switch path {
	case RouteAuth, RouteVote:
		return path
	}
	return RouteAuth
}

// Navigate switches the current view. /vote is only entered when the guard
// finds a stored session; otherwise the user lands on /.
func (a *App) Navigate(ctx context.Context, path string) error {
	target := resolve(path)
	if target == RouteVote && !a.guard.Allow(ctx) {
		a.logger.Debug(ctx, "no session, redirecting", "from", path)
		target = RouteAuth
	}

	if a.board != nil {
		a.board.Close()
		a.board = nil
	}
	a.route = target

	switch target {
	case RouteVote:
		a.enterVote(ctx)
	default:
		a.renderAuth()
	}
	return nil
}
