package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sondage/internal/client/services"
)

func (a *App) renderAuth() {
	mode := a.auth.Mode()

	msg := a.auth.LoginError()
	title := "Login"
	if mode == services.ModeRegister {
		msg = a.auth.RegisterError()
		title = "Register"
	}

	fmt.Fprintf(a.out, "\n== %s ==\n", title)
	if msg != "" {
		fmt.Fprintln(a.out, "Error:", msg)
	}
	if u, ok := a.sessions.Get(context.Background()); ok {
		fmt.Fprintf(a.out, "Signed in as %s. Type 'go /vote' to open the poll.\n", u.Pseudo)
	}
	if mode == services.ModeRegister {
		fmt.Fprintln(a.out, "Type 'register' to create an account, 'switch' to log in instead.")
	} else {
		fmt.Fprintln(a.out, "Type 'login' to sign in, 'switch' to create an account.")
	}
}

// SwitchMode toggles between the login and register forms.
func (a *App) SwitchMode(ctx context.Context) error {
	if a.auth.Mode() == services.ModeLogin {
		a.auth.SwitchMode(services.ModeRegister)
	} else {
		a.auth.SwitchMode(services.ModeLogin)
	}
	if a.route == RouteAuth {
		a.renderAuth()
	}
	return nil
}

// Login prompts for an email and signs in. On success the vote page opens.
func (a *App) Login(ctx context.Context) error {
	if a.auth.Mode() != services.ModeLogin {
		a.auth.SwitchMode(services.ModeLogin)
	}

	email, err := a.readLine("Enter email")
	if err != nil {
		return err
	}

	_, err = a.auth.Login(ctx, email)
	return a.afterAuth(ctx, err)
}

// Register prompts for a pseudo and an email and creates the account.
func (a *App) Register(ctx context.Context) error {
	if a.auth.Mode() != services.ModeRegister {
		a.auth.SwitchMode(services.ModeRegister)
	}

	pseudo, err := a.readLine("Enter pseudo")
	if err != nil {
		return err
	}
	email, err := a.readLine("Enter email")
	if err != nil {
		return err
	}

	_, err = a.auth.Register(ctx, pseudo, email)
	return a.afterAuth(ctx, err)
}

func (a *App) afterAuth(ctx context.Context, err error) error {
	if err == nil {
		return a.Navigate(ctx, RouteVote)
	}

	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		for _, f := range verr.Fields {
			fmt.Fprintf(a.out, "  %s: %s\n", f.Field, f.Message)
		}
	case errors.Is(err, services.ErrBusy):
		fmt.Fprintln(a.out, "A request is already in progress.")
	default:
		fmt.Fprintln(a.out, "Error:", err.Error())
	}
	return err
}
