package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"meditrack_pro/internal/domain/entities"
	"meditrack_pro/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meditrack_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meditrack_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "meditrack_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// Business metrics
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meditrack_ai_requests_total",
			Help: "Total number of text generation calls",
		},
		[]string{"kind", "outcome"},
	)

	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "meditrack_ai_request_duration_seconds",
			Help:    "Text generation latency in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"kind"},
	)

	exportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meditrack_exports_total",
			Help: "Total number of billing exports",
		},
		[]string{"format", "outcome"},
	)

	patientExportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meditrack_patient_exports_total",
			Help: "Total number of patient base exports",
		},
		[]string{"format", "outcome"},
	)
)

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request count and latency per route template, so
// /v1/patients/P-001 and /v1/patients/P-002 share one series.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

type instrumentedGenerator struct {
	next interfaces.ITextGenerator
}

// InstrumentGenerator counts text generation calls by kind (text, json or
// search) and outcome.
func InstrumentGenerator(next interfaces.ITextGenerator) interfaces.ITextGenerator {
	return instrumentedGenerator{next: next}
}

func (g instrumentedGenerator) Generate(ctx context.Context, req entities.TextGenerationRequest) (entities.TextGenerationResponse, error) {
	kind := "text"
	switch {
	case req.WithSearch:
		kind = "search"
	case req.ResponseFormat == entities.ResponseFormatJSONSchema:
		kind = "json"
	}

	start := time.Now()
	resp, err := g.next.Generate(ctx, req)
	aiRequestDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	aiRequestsTotal.WithLabelValues(kind, outcome(err)).Inc()
	return resp, err
}

type instrumentedExporter struct {
	interfaces.IRecordExporter
}

// InstrumentExporter counts exports by format and outcome.
func InstrumentExporter(next interfaces.IRecordExporter) interfaces.IRecordExporter {
	return instrumentedExporter{IRecordExporter: next}
}

func (e instrumentedExporter) Write(records []entities.BillingRecord) ([]byte, error) {
	out, err := e.IRecordExporter.Write(records)
	exportsTotal.WithLabelValues(string(e.Format()), outcome(err)).Inc()
	return out, err
}

type instrumentedPatientExporter struct {
	interfaces.IPatientExporter
}

func InstrumentPatientExporter(next interfaces.IPatientExporter) interfaces.IPatientExporter {
	return instrumentedPatientExporter{IPatientExporter: next}
}

func (e instrumentedPatientExporter) Write(rows []entities.PatientSheetRow) ([]byte, error) {
	out, err := e.IPatientExporter.Write(rows)
	patientExportsTotal.WithLabelValues(string(e.Format()), outcome(err)).Inc()
	return out, err
}
