package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/studyhallapp/studyhall-server/internal/api"
	"github.com/studyhallapp/studyhall-server/internal/auth"
	"github.com/studyhallapp/studyhall-server/internal/config"
	"github.com/studyhallapp/studyhall-server/internal/logger"
)

// APIServerHandle wraps the API server with Shutdownable.
type APIServerHandle struct {
	*api.Server
}

// Shutdown implements do.Shutdownable.
func (h *APIServerHandle) Shutdown() error {
	h.Server.Close()
	return nil
}

// ProvideAPIServer provides the HTTP handler with all routes configured.
func ProvideAPIServer(i do.Injector) (*APIServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokens := do.MustInvoke[*auth.TokenService](i)
	log := do.MustInvoke[*logger.Logger](i)

	srv := api.NewServer(storeHandle.Store, tokens, api.Config{
		Production:      cfg.App.IsProduction(),
		CORSOrigins:     cfg.Server.CORSOrigins,
		SessionDuration: cfg.Auth.SessionDuration,
		LoginPerMinute:  cfg.RateLimit.LoginPerMinute,
		LoginBurst:      cfg.RateLimit.LoginBurst,
	}, log.Logger)

	return &APIServerHandle{Server: srv}, nil
}

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	apiHandle := do.MustInvoke[*APIServerHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      apiHandle.Server,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
