package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oscarfuentes/gasinv-backend/api/controllers"
	"github.com/oscarfuentes/gasinv-backend/api/middleware"
	authsvc "github.com/oscarfuentes/gasinv-backend/internal/auth"
	catalogsvc "github.com/oscarfuentes/gasinv-backend/internal/catalog"
	dashboardsvc "github.com/oscarfuentes/gasinv-backend/internal/dashboard"
	inventorysvc "github.com/oscarfuentes/gasinv-backend/internal/inventory"
	tanksvc "github.com/oscarfuentes/gasinv-backend/internal/tanks"
	usersvc "github.com/oscarfuentes/gasinv-backend/internal/users"
	"github.com/oscarfuentes/gasinv-backend/pkg/auth/session"
	"github.com/oscarfuentes/gasinv-backend/pkg/config"
	"github.com/oscarfuentes/gasinv-backend/pkg/logger"
	"github.com/oscarfuentes/gasinv-backend/pkg/metrics"
	"github.com/oscarfuentes/gasinv-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps bundles everything the router needs.
type Deps struct {
	Config           *config.Config
	Logger           *logger.Logger
	DB               Pinger
	Redis            *redis.Client
	SessionManager   sessionManager
	AuthService      authsvc.Service
	UsersService     usersvc.Service
	CatalogService   catalogsvc.Service
	TanksService     tanksvc.Service
	InventoryService inventorysvc.Service
	DashboardService dashboardsvc.Service
	Registry         *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()

	var httpMetrics *metrics.HTTPMetrics
	if deps.Registry != nil {
		httpMetrics = metrics.NewHTTPMetrics(deps.Registry)
	}

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Get("/", controllers.Root(cfg))

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readyDeps(deps)))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(deps.SessionManager, cfg.JWT, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.SessionManager, cfg.JWT, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
			r.Get("/me", controllers.AuthMe(deps.UsersService, logg))

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireUserManager(logg))
				r.Get("/", controllers.ListUsers(deps.UsersService, logg))
				r.Post("/", controllers.CreateUser(deps.UsersService, logg))
				r.Get("/{id}", controllers.GetUser(deps.UsersService, logg))
				r.Put("/{id}", controllers.UpdateUser(deps.UsersService, logg))
				r.Delete("/{id}", controllers.DeleteUser(deps.UsersService, logg))
			})
		})
	})

	r.Route("/inventory", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))

		r.Route("/tank-types", func(r chi.Router) {
			r.Get("/", controllers.ListTankTypes(deps.CatalogService, logg))
			r.With(middleware.RequireInventoryManager(logg)).Post("/", controllers.CreateTankType(deps.CatalogService, logg))
		})

		r.Route("/tanks", func(r chi.Router) {
			r.Get("/", controllers.ListTanks(deps.TanksService, logg))
			r.With(middleware.RequireInventoryManager(logg)).Post("/", controllers.CreateTank(deps.TanksService, logg))
			r.Get("/{id}", controllers.GetTank(deps.TanksService, logg))
			r.With(middleware.RequireInventoryManager(logg)).Put("/{id}", controllers.UpdateTank(deps.TanksService, logg))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", controllers.ListInventory(deps.InventoryService, logg))
			r.With(middleware.RequireInventoryManager(logg)).Put("/{id}", controllers.UpdateInventory(deps.InventoryService, logg))
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", controllers.ListTransactions(deps.InventoryService, logg))
			r.With(middleware.RequireInventoryManager(logg)).Post("/", controllers.CreateTransaction(deps.InventoryService, logg))
		})
	})

	r.Route("/dashboard", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
		r.Get("/stats", controllers.DashboardStats(deps.DashboardService, logg))
		r.Get("/low-stock", controllers.DashboardLowStock(deps.DashboardService, logg))
		r.Get("/tank-status-summary", controllers.DashboardTankStatusSummary(deps.DashboardService, logg))
	})

	return r
}

func readyDeps(deps Deps) map[string]controllers.DependencyPinger {
	out := map[string]controllers.DependencyPinger{}
	if deps.DB != nil {
		out["database"] = deps.DB
	}
	if deps.Redis != nil {
		out["redis"] = deps.Redis
	}
	return out
}
