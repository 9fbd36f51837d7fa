package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker reports the state of the database and, when configured, of the external
// identity provider. A nil database means the in-memory backend is in use.
type HealthChecker struct {
	db         DBPinger
	authHost   string
	httpClient *http.Client
	log        *slog.Logger
}

func NewHealthChecker(db DBPinger, authHost string, log *slog.Logger) *HealthChecker {
	clientTO := 5
	return &HealthChecker{
		db:         db,
		authHost:   authHost,
		httpClient: &http.Client{Timeout: time.Duration(clientTO) * time.Second},
		log:        log,
	}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	h.log.DebugContext(req.Context(), "Performing health checks...")

	var err error
	status := make(map[string]string)
	overallStatus := http.StatusOK

	switch {
	case h.db == nil:
		status["database"] = "memory"
	default:
		if err = h.db.Ping(req.Context()); err != nil {
			status["database"] = "unavailable"
			overallStatus = http.StatusServiceUnavailable
			h.log.WarnContext(req.Context(), "Health check failed: DB ping", "error", err)
		} else {
			status["database"] = "ok"
		}
	}

	if h.authHost != "" {
		if !h.checkAuthHost(req.Context(), status) {
			overallStatus = http.StatusServiceUnavailable
		}
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err = json.NewEncoder(writer).Encode(status); err != nil {
		h.log.ErrorContext(req.Context(), "Failed to write health check response", "error", err)
	}

	h.log.DebugContext(req.Context(), "Health checks completed", "status", overallStatus)
}

func (h *HealthChecker) checkAuthHost(ctx context.Context, status map[string]string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, h.authHost, nil)
	if err != nil {
		status["auth_provider"] = "unreachable"
		h.log.WarnContext(ctx, "Health check failed: invalid auth provider host", "host", h.authHost, "error", err)
		return false
	}

	resp, err := h.httpClient.Do(req)
	if resp != nil {
		defer func() {
			if err = resp.Body.Close(); err != nil {
				h.log.WarnContext(ctx, "Failed to close response body", "error", err)
			}
		}()
	}

	switch {
	case err != nil:
		status["auth_provider"] = "unreachable"
		h.log.WarnContext(ctx, "Health check failed: auth provider unreachable", "host", h.authHost, "error", err)
		return false
	case resp.StatusCode >= http.StatusInternalServerError:
		status["auth_provider"] = "degraded"
		h.log.WarnContext(ctx, "Health check failed: auth provider returned error status",
			"host", h.authHost, "status_code", resp.StatusCode)
		return false
	default:
		status["auth_provider"] = "ok"
		return true
	}
}
