package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/mbopage/ezycook-cli/internal/client/api"
	"github.com/mbopage/ezycook-cli/internal/client/config"
	"github.com/mbopage/ezycook-cli/internal/client/repositories/credentials"
	"github.com/mbopage/ezycook-cli/internal/client/services"
	"github.com/mbopage/ezycook-cli/internal/client/storage"
	"github.com/mbopage/ezycook-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App owns the wired client: configuration, local storage, API clients, and
// the view-models the REPL renders from.
type App struct {
	config   *config.Config
	auth     services.AuthService
	recipes  *services.RecipeViewModel
	users    *services.UserViewModel
	repos    *storage.Repositories
	log      logging.Logger
	reader   *bufio.Reader
	userName string
}

// NewApp wires the full client: credential key, SQLite cache, HTTP gateway,
// API clients, services and view-models.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	key, err := credentials.LoadOrCreateKey(c.CredentialKeyPath)
	if err != nil {
		log.Error(ctx, "error loading credential key", "error", err)
		return nil, err
	}

	repos, err := storage.InitDatabase(ctx, c.DatabasePath, key)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	gw := api.NewGateway(c.BaseURL, c.RequestTimeout, c.UploadTimeout, log)
	recipeClient := api.NewRecipeClient(gw)
	userClient := api.NewUserClient(gw)

	auth := services.NewAuthService(userClient, repos.Credentials)
	favs := services.NewFavoriteService(repos.DB, log)

	return &App{
		config:  c,
		auth:    auth,
		recipes: services.NewRecipeViewModel(recipeClient, auth, favs, log),
		users:   services.NewUserViewModel(auth, log),
		repos:   repos,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.repos.DB.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	_, err := a.auth.Token(context.Background())
	return err == nil
}
