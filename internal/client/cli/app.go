package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/sondage/internal/client/client"
	"github.com/dmitrijs2005/sondage/internal/client/config"
	"github.com/dmitrijs2005/sondage/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/sondage/internal/client/services"
	"github.com/dmitrijs2005/sondage/internal/client/session"
	"github.com/dmitrijs2005/sondage/internal/logging"
)

type App struct {
	client   client.Client
	sessions *session.Store
	guard    *session.Guard
	auth     *services.AuthService
	board    *services.Board
	logger   logging.Logger

	db    *sql.DB
	route string

	reader      *bufio.Reader
	out         io.Writer
	interactive bool
}

// NewApp opens the session database named in c and connects the API client.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := session.OpenDatabase(ctx, c.SessionFile)
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}

	sessions := session.NewStore(metadata.NewSQLiteRepository(db))
	api := client.NewHTTPClient(c.BaseURL, nil)

	a := newApp(api, sessions, logger, os.Stdin, os.Stdout)
	a.db = db
	a.interactive = isTerminal(int(os.Stdin.Fd()))
	return a, nil
}

func newApp(api client.Client, sessions *session.Store, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		client:   api,
		sessions: sessions,
		guard:    session.NewGuard(sessions),
		auth:     services.NewAuthService(api, sessions, logger),
		logger:   logger,
		route:    RouteAuth,
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Run opens the poll, or the login page when no user is stored, and
// processes commands until exit or EOF.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to sondage (type 'help' for commands)")
	_ = a.Navigate(ctx, RouteVote)

	runREPL(ctx, a, a.status, a.reader)
}

// Close detaches the current view and releases the session database.
func (a *App) Close() {
	if a.board != nil {
		a.board.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error(context.Background(), "closing session database", "error", err)
		}
	}
}

func (a *App) Route() string { return a.route }

func (a *App) status() string {
	s := a.route
	if u, ok := a.sessions.Get(context.Background()); ok {
		s = u.Pseudo + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// readLine prompts for one line of input. When stdin is not a terminal the
// answer is echoed so that transcripts stay readable.
func (a *App) readLine(prompt string) (string, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	if !a.interactive {
		fmt.Fprintln(a.out, s)
	}
	return s, nil
}
