package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/ejcdigital/internal/client/client"
	"github.com/dmitrijs2005/ejcdigital/internal/client/config"
	"github.com/dmitrijs2005/ejcdigital/internal/client/liturgy"
	"github.com/dmitrijs2005/ejcdigital/internal/client/loader"
	"github.com/dmitrijs2005/ejcdigital/internal/client/models"
	"github.com/dmitrijs2005/ejcdigital/internal/client/render"
	"github.com/dmitrijs2005/ejcdigital/internal/client/services"
	"github.com/dmitrijs2005/ejcdigital/internal/client/session"
	"github.com/dmitrijs2005/ejcdigital/internal/client/storage"
	"github.com/dmitrijs2005/ejcdigital/internal/logging"
)

// App is the terminal shell: it owns the session, the page cycles and the
// current route.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	sessions *session.Manager
	auth     *services.AuthService
	pages    *services.PageService
	liturgy  *liturgy.Selector
	render   *render.Renderer
	reader   *bufio.Reader
	out      io.Writer

	path       string
	filter     services.MemberFilter
	loginEmail string

	home    *loader.Cycle[services.HomeData]
	members *loader.Cycle[[]models.Member]
	relics  *loader.Cycle[[]services.RelicView]
	events  *loader.Cycle[[]models.Event]
}

// Deps are the collaborators of an App. Tests build them directly; NewApp
// builds them from configuration.
type Deps struct {
	Sessions *session.Manager
	Fixtures client.FixtureClient
	Liturgy  client.LiturgyClient
	Log      logging.Logger
	In       io.Reader
	Out      io.Writer
	Options  []liturgy.Option
}

// NewApp opens the local database and connects the transports described by
// c. Close releases the database.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	hc := &http.Client{Timeout: c.RequestTimeout}

	a := newApp(Deps{
		Sessions: session.NewManager(session.NewSQLStore(db), log),
		Fixtures: client.NewHTTPFixtureClient(c.FixturesBaseURL, hc, log),
		Liturgy:  client.NewHTTPLiturgyClient(c.LiturgyBaseURL, hc, log),
		Log:      log,
		In:       os.Stdin,
		Out:      os.Stdout,
	})
	a.config = c
	a.db = db
	return a, nil
}

func newApp(d Deps) *App {
	return &App{
		log:      d.Log.With("component", "cli"),
		sessions: d.Sessions,
		auth:     services.NewAuthService(d.Fixtures, d.Sessions, d.Log),
		pages:    services.NewPageService(d.Fixtures, nil, d.Log),
		liturgy:  liturgy.NewSelector(d.Liturgy, d.Log, d.Options...),
		render:   render.New(render.DefaultTheme, 80),
		reader:   bufio.NewReader(d.In),
		out:      d.Out,
		path:     PathHome,

		home:    loader.New[services.HomeData]("home", d.Log),
		members: loader.New[[]models.Member]("listao", d.Log),
		relics:  loader.New[[]services.RelicView]("gamificacao", d.Log),
		events:  loader.New[[]models.Event]("agenda", d.Log),
	}
}

// Run restores the session and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the local database.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.LoggedIn()
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

// status is shown in the prompt.
func (a *App) status() string {
	if u := a.sessions.Current(); u != nil {
		return fmt.Sprintf("(%s %s)", u.DisplayName(), a.path)
	}
	return ""
}
