package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/santa/internal/santa/store"
	"github.com/aussiebroadwan/santa/pkg/httpx"
	"github.com/aussiebroadwan/santa/pkg/santasdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and whether the data directory is still writable
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	santasdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	santasdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &santasdk.HealthChecks{
			Storage: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Storage = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := santasdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
