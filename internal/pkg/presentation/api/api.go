package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meli-challenge/ip-trace/internal/pkg/application/invocations"
	"github.com/meli-challenge/ip-trace/internal/pkg/application/trace"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/clients"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/logging"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/metrics"
	"github.com/meli-challenge/ip-trace/internal/pkg/infrastructure/tracing"
	"github.com/meli-challenge/ip-trace/pkg/types"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const maxBodySize int64 = 1 << 20

var tracer = otel.Tracer("ip-trace/api")

func RegisterHandlers(ctx context.Context, router *chi.Mux, traceSvc trace.TraceService, invocationSvc invocations.InvocationService) *chi.Mux {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetLoggerFromContext(ctx)

	router.Post("/trace", traceHandler(log, traceSvc))
	router.Get("/stats", statisticsHandler(log, invocationSvc))
	router.Handle("/metrics", metrics.Handler())

	return router
}

func traceHandler(log zerolog.Logger, svc trace.TraceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "trace")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		ctx, requestLogger := addTraceIDToLoggerAndStoreInContext(ctx, span, log)

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to read body")
			badRequest(w)
			return
		}

		req := types.TraceRequest{}
		err = json.Unmarshal(body, &req)
		if err != nil {
			requestLogger.Error().Err(err).Msg("unable to unmarshal body")
			badRequest(w)
			return
		}

		result, err := svc.Trace(ctx, req.IP)
		if err != nil {
			status, message := traceErrorStatus(err)
			requestLogger.Error().Err(err).Int("status", status).Msg("unable to trace ip")
			metrics.TraceRequests.WithLabelValues(outcome(status)).Inc()
			writeJSON(w, status, types.ErrorResponse{Message: message})
			return
		}

		metrics.TraceRequests.WithLabelValues(outcome(http.StatusOK)).Inc()
		writeJSON(w, http.StatusOK, toTraceResponse(result))
	}
}

func statisticsHandler(log zerolog.Logger, svc invocations.InvocationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-statistics")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		ctx, requestLogger := addTraceIDToLoggerAndStoreInContext(ctx, span, log)

		summary, err := svc.Statistics(ctx)
		if errors.Is(err, invocations.ErrNoInvocations) {
			requestLogger.Debug().Msg("no invocations recorded yet")
			metrics.StatisticsRequests.WithLabelValues(outcome(http.StatusNotFound)).Inc()
			writeJSON(w, http.StatusNotFound, types.ErrorResponse{Message: "no data"})
			err = nil
			return
		}
		if err != nil {
			requestLogger.Error().Err(err).Msg("could not fetch statistics")
			metrics.StatisticsRequests.WithLabelValues(outcome(http.StatusInternalServerError)).Inc()
			writeJSON(w, http.StatusInternalServerError, types.ErrorResponse{Message: "internal error"})
			return
		}

		metrics.StatisticsRequests.WithLabelValues(outcome(http.StatusOK)).Inc()
		writeJSON(w, http.StatusOK, toStatisticsResponse(summary))
	}
}

func traceErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, trace.ErrInvalidIP):
		return http.StatusBadRequest, "bad request"
	case errors.Is(err, clients.ErrCountryNotResolved):
		return http.StatusNotFound, "country not found"
	case errors.Is(err, clients.ErrUpstream):
		return http.StatusBadGateway, "upstream service unavailable"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func outcome(status int) string {
	switch {
	case status < 300:
		return "success"
	case status < 500:
		return "rejected"
	default:
		return "failure"
	}
}

func badRequest(w http.ResponseWriter) {
	metrics.TraceRequests.WithLabelValues(outcome(http.StatusBadRequest)).Inc()
	writeJSON(w, http.StatusBadRequest, types.ErrorResponse{Message: "bad request"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func addTraceIDToLoggerAndStoreInContext(ctx context.Context, span oteltrace.Span, log zerolog.Logger) (context.Context, zerolog.Logger) {
	if traceID := tracing.TraceID(span); traceID != "" {
		log = log.With().Str("traceID", traceID).Logger()
	}

	return logging.NewContextWithLogger(ctx, log), log
}
