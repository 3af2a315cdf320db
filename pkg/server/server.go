package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vantagehq/vantage/pkg/assist"
	"github.com/vantagehq/vantage/pkg/cache"
	"github.com/vantagehq/vantage/pkg/config"
	"github.com/vantagehq/vantage/pkg/server/middleware"
	"github.com/vantagehq/vantage/pkg/server/store"
	gormstore "github.com/vantagehq/vantage/pkg/server/store/gorm"
)

type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.Config
	Cache  cache.Cache
	Logger *zap.Logger

	Organizations store.OrganizationsStore
	Users         store.UsersStore
	Projects      store.ProjectsStore
	Changes       store.ChangesStore
	Audit         store.AuditStore
	Features      store.FeaturesStore
	Reports       store.ReportsStore
	Portfolio     store.PortfolioStore
	Health        store.HealthStore
	Assist        *assist.Client

	JWTMiddleware *middleware.JWTAuthenticator

	srv *http.Server
}

func NewServer(
	db *gorm.DB,
	cfg *config.Config,
	c cache.Cache,
	logger *zap.Logger,
	host string,
	port string,
) *Server {
	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	users := gormstore.NewUsersStore(db)

	return &Server{
		Router: router,
		DB:     db,
		Config: cfg,
		Cache:  c,
		Logger: logger,

		Organizations: gormstore.NewOrganizationsStore(db),
		Users:         users,
		Projects:      gormstore.NewProjectsStore(db),
		Changes:       gormstore.NewChangesStore(db),
		Audit:         gormstore.NewAuditStore(db),
		Features:      gormstore.NewFeaturesStore(db),
		Reports:       gormstore.NewReportsStore(db),
		Portfolio:     gormstore.NewPortfolioStore(db),
		Health:        gormstore.NewHealthStore(db),
		Assist:        assist.NewClient(cfg.AssistURL, cfg.AssistModel),

		JWTMiddleware: middleware.NewJWTAuthenticator(users),

		srv: srv,
	}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
