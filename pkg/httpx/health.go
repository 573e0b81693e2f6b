package httpx

import (
	"net/http"

	"github.com/ghuser/itemregistry/pkg/health"
)

// HealthReporter is satisfied by *health.Reporter.
type HealthReporter interface {
	Report() health.Report
}

// HealthResponse is the liveness payload served by GET /health.
type HealthResponse struct {
	Status    string  `json:"status"    example:"ok"`
	Uptime    float64 `json:"uptime"    example:"12.345"`
	Timestamp string  `json:"timestamp" example:"2024-01-15T10:30:00.000Z"`
} // @name HealthResponse

// HealthHandler returns an http.HandlerFunc reporting process liveness.
// The process has no external dependencies to probe, so it always answers 200.
//
//	@Summary		Health check
//	@Description	Reports that the process is alive with its uptime in seconds
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Router			/health [get]
func HealthHandler(reporter HealthReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		report := reporter.Report()
		JSON(w, http.StatusOK, HealthResponse{
			Status:    report.Status,
			Uptime:    report.Uptime.Seconds(),
			Timestamp: FormatTime(report.Timestamp),
		})
	}
}
