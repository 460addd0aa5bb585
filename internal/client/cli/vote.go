package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/sondage/internal/client/models"
	"github.com/dmitrijs2005/sondage/internal/client/services"
)

func (a *App) enterVote(ctx context.Context) {
	a.board = services.NewBoard(a.client, a.sessions, a.logger)
	if a.board.Loading() {
		fmt.Fprintln(a.out, "Loading...")
	}
	a.board.Load(ctx)
	a.renderVote(ctx)
}

func (a *App) renderVote(ctx context.Context) {
	b := a.board
	if b.Loading() {
		fmt.Fprintln(a.out, "Loading...")
		return
	}

	st := b.Stats()
	fmt.Fprintln(a.out, "\n== Sondage ==")
	fmt.Fprintln(a.out, models.Question)
	fmt.Fprintf(a.out, "Total votes: %d\n", st.Total)
	fmt.Fprintf(a.out, "  %s: %d (%s%%)\n", models.ChoiceOui, st.CountOui, formatPct(st.Total, st.PctOui))
	fmt.Fprintf(a.out, "  %s: %d (%s%%)\n", models.ChoiceNon, st.CountNon, formatPct(st.Total, st.PctNon))

	if v, ok := b.ExistingVote(ctx); ok {
		fmt.Fprintf(a.out, "You already voted: %s\n", v.Choice)
	} else {
		fmt.Fprintln(a.out, "Type 'oui' or 'non' to vote.")
	}

	votes := b.Votes()
	if len(votes) == 0 {
		return
	}
	fmt.Fprintln(a.out, "Votes:")
	for _, v := range votes {
		fmt.Fprintf(a.out, "  %-30s %s\n", v.UserID, v.Choice)
	}
}

// formatPct prints "0" for an empty poll and one decimal otherwise.
func formatPct(total int, pct float64) string {
	if total == 0 {
		return "0"
	}
	return strconv.FormatFloat(pct, 'f', 1, 64)
}

// Vote casts choice for the signed-in user and redraws the poll.
func (a *App) Vote(ctx context.Context, choice models.Choice) error {
	if a.route != RouteVote || a.board == nil {
		fmt.Fprintln(a.out, "Log in to vote.")
		return nil
	}

	_, err := a.board.Cast(ctx, choice)
	switch {
	case err == nil:
		a.renderVote(ctx)
	case errors.Is(err, services.ErrAlreadyVoted):
		fmt.Fprintln(a.out, "You already voted.")
	case errors.Is(err, services.ErrBusy):
		fmt.Fprintln(a.out, "A vote is already being submitted.")
	case errors.Is(err, services.ErrNoSession):
		return a.Navigate(ctx, RouteAuth)
	default:
		fmt.Fprintln(a.out, "Vote failed, try again.")
	}
	return err
}

// Show redraws the current page without fetching anything.
func (a *App) Show(ctx context.Context) error {
	if a.route == RouteVote && a.board != nil {
		a.renderVote(ctx)
		return nil
	}
	a.renderAuth()
	return nil
}

// Refresh reloads the current page.
func (a *App) Refresh(ctx context.Context) error {
	return a.Navigate(ctx, a.route)
}

// Logout forgets the stored user and returns to /.
func (a *App) Logout(ctx context.Context) error {
	if a.board != nil {
		a.board.Logout(ctx)
	} else if err := a.sessions.Clear(ctx); err != nil {
		a.logger.Error(ctx, "failed to clear session", "error", err)
	}
	return a.Navigate(ctx, RouteAuth)
}
