package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/claranceliberi/uni-resource-hub/internal/client/api"
	"github.com/claranceliberi/uni-resource-hub/internal/client/config"
	"github.com/claranceliberi/uni-resource-hub/internal/client/session"
	"github.com/claranceliberi/uni-resource-hub/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the configuration, the API client and the session manager
// behind the interactive command loop.
type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Manager
	log     logging.Logger
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "initializing database", "error", err)
		return nil, err
	}

	store := session.NewStore(db)
	apiClient := api.New(c.ServerAddr, c.RequestTimeout, store)
	manager := session.NewManager(apiClient, store, log)

	return &App{
		config:  c,
		api:     apiClient,
		session: manager,
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores the persisted session and starts the command loop. It
// returns when the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	if err := a.session.Initialize(ctx); err != nil {
		a.log.Error(ctx, "restoring session", "error", err)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}

// handleErr translates API failures into user-facing messages. A 401 also
// tears down the session, since the held credential is no longer valid.
func (a *App) handleErr(ctx context.Context, err error) {
	var apiErr *api.APIError
	detail := ""
	if errors.As(err, &apiErr) {
		detail = apiErr.Detail
	}

	switch {
	case errors.Is(err, api.ErrUnauthorized):
		if herr := a.session.HandleUnauthorized(ctx); herr != nil {
			a.log.Error(ctx, "clearing session", "error", herr)
		}
		if detail != "" {
			fmt.Fprintln(a.out, detail)
			return
		}
		fmt.Fprintln(a.out, "Session expired, please log in again.")

	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable, try again later.")

	case errors.Is(err, api.ErrNotFound):
		fmt.Fprintln(a.out, "Not found.")

	default:
		if detail != "" {
			fmt.Fprintln(a.out, detail)
			return
		}
		fmt.Fprintln(a.out, "Error:", err)
	}
}
