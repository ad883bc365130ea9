package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	"github.com/a1br4h33m/IMDB-Redesign/internal/client/api"
	"github.com/a1br4h33m/IMDB-Redesign/internal/client/config"
	"github.com/a1br4h33m/IMDB-Redesign/internal/client/services"
	"github.com/a1br4h33m/IMDB-Redesign/internal/client/session"
	"github.com/a1br4h33m/IMDB-Redesign/internal/client/tmdb"
	"github.com/a1br4h33m/IMDB-Redesign/internal/logging"

	_ "modernc.org/sqlite"
)

// App is the interactive client. It owns the service layer and tracks the
// current session for the prompt; services report session changes back
// through the Notifier callbacks below.
type App struct {
	config    *config.Config
	auth      services.AuthService
	twoFA     services.TwoFAService
	favorites services.FavoriteService
	catalog   services.CatalogService
	images    *tmdb.Client
	store     *session.SQLiteStore
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer

	mu      sync.Mutex
	session *session.Session
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := session.Open(ctx, c.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error opening session database", "err", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.BackendBaseURL, c.RequestTimeout)
	catalogClient := tmdb.NewClient(tmdb.Config{
		BaseURL:   c.CatalogBaseURL,
		APIKey:    c.CatalogAPIKey,
		ImageBase: c.CatalogImageBase,
		Timeout:   c.RequestTimeout,
	})

	a := &App{
		config: c,
		images: catalogClient,
		store:  store,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	deps := services.Deps{
		Client:                     apiClient,
		Store:                      store,
		Notifier:                   a,
		Log:                        log,
		ClearSessionOnUnauthorized: c.ClearSessionOnUnauthorized,
	}

	a.auth = services.NewAuthService(deps)
	a.twoFA = services.NewTwoFAService(deps, c.TwoFAIssuer)
	a.favorites = services.NewFavoriteService(deps)
	a.catalog = services.NewCatalogService(catalogClient, log)

	return a, nil
}

// SessionChanged implements services.Notifier. It keeps the prompt's view of
// the current session in sync with the store.
func (a *App) SessionChanged(s *session.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = s
}

// TwoFAStateChanged implements services.Notifier.
func (a *App) TwoFAStateChanged(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session != nil {
		a.session.User.TwoFAEnabled = enabled
	}
}

func (a *App) currentSession() *session.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session
}

func (a *App) isLoggedIn() bool {
	return a.currentSession() != nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}
