package controllers

import (
	"context"
	"net/http"

	"go.uber.org/multierr"

	"github.com/oscarfuentes/gasinv-backend/api/responses"
	"github.com/oscarfuentes/gasinv-backend/pkg/config"
	pkgerrors "github.com/oscarfuentes/gasinv-backend/pkg/errors"
	"github.com/oscarfuentes/gasinv-backend/pkg/logger"
)

// DependencyPinger is satisfied by clients that can report reachability.
type DependencyPinger interface {
	Ping(ctx context.Context) error
}

const apiVersion = "1.0.0"

// Root serves the service banner at "/".
func Root(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{
			"service": cfg.App.ServiceName,
			"version": apiVersion,
			"status":  "ok",
		})
	}
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Gasinv-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every backing dependency and reports not-ready if any fails.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]DependencyPinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Gasinv-Env", cfg.App.Env)

		var combined error
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(r.Context()); err != nil {
				combined = multierr.Append(combined, pkgerrors.Wrap(pkgerrors.CodeDependency, err, name+" unavailable"))
			}
		}
		if combined != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "dependencies unavailable"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
