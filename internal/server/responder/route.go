package responder

import (
	"log/slog"
	"net/http"

	"github.com/atlanticdynamic/hellocontainer/internal/server/responder/accesslog"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

const routeName = "greeting"

// newRoute builds the single route. The handler is served directly with no mux
// in front, so raw paths such as //foo or /a/../b are never cleaned or redirected.
func newRoute(body []byte, accessLog *accesslog.Logger, logger *slog.Logger) (*httpserver.Route, error) {
	return httpserver.NewRouteFromHandlerFunc(routeName, "/", greetingHandler(body, logger), accessLog.Middleware())
}

// greetingHandler writes body with status 200 for any path, query or header set.
// No headers are set here; Content-Type and Date come from net/http.
func greetingHandler(body []byte, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			// client went away mid-response
			logger.Debug("Failed to write response", "path", r.URL.Path, "error", err)
		}
	}
}
