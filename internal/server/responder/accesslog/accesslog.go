// Package accesslog writes one diagnostic record per HTTP request.
//
// Records go to a slog handler (stderr in production). The middleware never
// touches the response, so clients see exactly what the wrapped handler wrote.
package accesslog

import (
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

const (
	attrRequestID = "request_id"
	attrMethod    = "method"
	attrPath      = "path"
	attrQuery     = "query"
	attrClientIP  = "client_ip"
	attrProto     = "proto"
	attrStatus    = "status"
	attrSize      = "size"
	attrDuration  = "duration"

	logMessage = "HTTP request"
)

// Logger is a go-supervisor middleware that logs completed requests.
type Logger struct {
	logger *slog.Logger
	newID  func() string
}

// New creates an access logger writing to handler, or to the default handler when nil.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &Logger{
		logger: slog.New(handler),
		newID:  newRequestID,
	}
}

func newRequestID() string {
	id, err := uuid.NewV6()
	if err != nil {
		return ""
	}
	return id.String()
}

// Middleware returns the middleware function
func (l *Logger) Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()
		start := time.Now()

		rp.Next()

		l.logRequest(r, rp.Writer(), time.Since(start))
	}
}

func (l *Logger) logRequest(r *http.Request, rw httpserver.ResponseWriter, duration time.Duration) {
	status := rw.Status()
	if status == 0 {
		status = http.StatusOK
	}

	attrs := []slog.Attr{
		slog.String(attrRequestID, l.newID()),
		slog.String(attrMethod, r.Method),
		slog.String(attrPath, r.URL.Path),
		slog.String(attrClientIP, clientIP(r)),
		slog.String(attrProto, r.Proto),
		slog.Int(attrStatus, status),
		slog.Int(attrSize, rw.Size()),
		slog.Duration(attrDuration, duration),
	}
	if r.URL.RawQuery != "" {
		attrs = append(attrs, slog.String(attrQuery, r.URL.RawQuery))
	}

	l.logger.LogAttrs(r.Context(), levelForStatus(status), logMessage, attrs...)
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// clientIP is the peer address; proxies are not trusted here.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
