package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/rentverse/internal/client/api"
	"github.com/dmitrijs2005/rentverse/internal/client/config"
	"github.com/dmitrijs2005/rentverse/internal/client/credstore"
	"github.com/dmitrijs2005/rentverse/internal/client/location"
	"github.com/dmitrijs2005/rentverse/internal/client/models"
	"github.com/dmitrijs2005/rentverse/internal/client/services"
	"github.com/dmitrijs2005/rentverse/internal/client/session"
	"github.com/dmitrijs2005/rentverse/internal/client/storage"
	"github.com/dmitrijs2005/rentverse/internal/logging"
)

// sessionManager is the part of session.Manager the commands use.
type sessionManager interface {
	Init(ctx context.Context)
	Status() session.Status
	User() *models.User
	IsAuthenticated() bool
	Login(ctx context.Context, creds models.LoginCredentials, opts ...session.LoginOption) (*models.User, error)
	Register(ctx context.Context, data models.RegisterData, opts ...session.LoginOption) (*models.User, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, patch models.UserPatch) error
	UploadAvatar(ctx context.Context, filename string, r io.Reader) (string, error)
	Close() error
}

type locator interface {
	Reverse(ctx context.Context, lat, lon float64) location.Info
}

type App struct {
	session  sessionManager
	props    services.PropertyService
	favs     services.FavoriteService
	bookings services.BookingService
	geo      locator
	log      logging.Logger

	reader       *bufio.Reader
	out          io.Writer
	maxImageSize int64

	db *sql.DB
}

// NewApp opens the local database and builds every client component from cfg.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store, err := credstore.New(ctx, db, cfg.StoreSecret)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	apiClient, err := api.New(cfg.APIBaseURL,
		api.WithTimeout(cfg.APITimeout),
		api.WithTokenStore(store),
		api.WithLogger(log.With("component", "api")),
		api.WithUserAgent(cfg.UserAgent),
		api.WithRateLimit(cfg.RequestsPerSecond, cfg.RequestBurst),
		api.WithRefreshSkew(cfg.TokenRefreshSkew),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	// Nominatim's usage policy allows one request per second.
	geoClient, err := api.New(cfg.GeocoderURL,
		api.WithTimeout(cfg.APITimeout),
		api.WithLogger(log.With("component", "geocoder")),
		api.WithUserAgent(cfg.UserAgent),
		api.WithRateLimit(1, 1),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		session:      session.NewManager(services.NewAuthService(apiClient), store, log),
		props:        services.NewPropertyService(apiClient, cfg.DefaultPageSize, cfg.MaxImagesPerProperty),
		favs:         services.NewFavoriteService(apiClient),
		bookings:     services.NewBookingService(apiClient),
		geo:          location.NewService(geoClient, log.With("component", "location")),
		log:          log,
		reader:       bufio.NewReader(os.Stdin),
		out:          os.Stdout,
		maxImageSize: cfg.MaxImageSize,
		db:           db,
	}, nil
}

// Run performs the startup session check and then serves the REPL until the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Rentverse (type 'help' for commands)")

	a.session.Init(ctx)
	if u := a.session.User(); u != nil {
		fmt.Fprintf(a.out, "Signed in as %s <%s>\n", u.Name, u.Email)
	} else {
		fmt.Fprintln(a.out, "Not signed in")
	}

	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the session and the database.
func (a *App) Close() error {
	_ = a.session.Close()
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if u := a.session.User(); u != nil {
		return "(" + u.Name + ")"
	}
	return "(" + a.session.Status().String() + ")"
}
