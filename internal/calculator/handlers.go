package calculator

import (
	"encoding/json"
	"errors"
	"net/http"

	"bmi-calculator/internal/handlers"
	"bmi-calculator/internal/health"
	"bmi-calculator/internal/observability"
	"bmi-calculator/internal/session"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Handler exposes a Service over HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Calculate handles POST /calculator/bmi.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := observability.RequestIDFromContext(ctx)
	sessionID := session.IDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.bmi",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
			attribute.String("session.id", sessionID),
		),
	)
	defer span.End()
	logger := observability.LoggerWithTrace(ctx)

	var req BMIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "bmi", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	m, err := req.Measurement()
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "bmi", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	res, err := h.svc.Calculate(ctx, sessionID, m)
	switch {
	case errors.Is(err, health.ErrInvalidHeight):
		observability.RecordError(ctx, span, logger, errorCounter, "bmi", health.ErrInvalidHeight.Error(), err, http.StatusBadRequest, w)
		return
	case errors.Is(err, health.ErrInvalidMeasurement):
		observability.RecordError(ctx, span, logger, errorCounter, "bmi", err.Error(), err, http.StatusBadRequest, w)
		return
	case err != nil:
		observability.RecordError(ctx, span, logger, errorCounter, "bmi", "could not record calculation", err, http.StatusInternalServerError, w)
		return
	}

	span.SetAttributes(
		attribute.Float64("calculator.bmi", res.BMI),
		attribute.String("calculator.category", string(res.Band.Category)),
		attribute.Int("calculator.calories", res.Calories),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("bmi calculation completed",
		zap.Float64("bmi", res.BMI),
		zap.String("category", string(res.Band.Category)),
		zap.Float64("bmr", res.BMR),
		zap.Int("calories", res.Calories),
		zap.String("session_id", sessionID),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, newBMIResponse(res))
}

// History handles GET /calculator/history. The optional ?unit= selects the
// unit label used in the text lines.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.IDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.history",
		trace.WithAttributes(attribute.String("session.id", sessionID)),
	)
	defer span.End()
	logger := observability.LoggerWithTrace(ctx)

	var displayUnit health.HeightUnit
	if raw := r.URL.Query().Get("unit"); raw != "" {
		unit, err := health.ParseHeightUnit(raw)
		if err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, "history", err.Error(), err, http.StatusBadRequest, w)
			return
		}
		displayUnit = unit
	}

	records, err := h.svc.History(ctx, sessionID)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "history", "history unavailable", err, http.StatusInternalServerError, w)
		return
	}

	span.SetStatus(codes.Ok, "")

	handlers.WriteJSON(w, http.StatusOK, HistoryResponse{
		Count:   len(records),
		Records: records,
		Lines:   health.FormatHistory(records, displayUnit),
	})
}

// ResetHistory handles DELETE /calculator/history.
func (h *Handler) ResetHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := session.IDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.reset",
		trace.WithAttributes(attribute.String("session.id", sessionID)),
	)
	defer span.End()
	logger := observability.LoggerWithTrace(ctx)

	if err := h.svc.Reset(ctx, sessionID); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "reset", "history unavailable", err, http.StatusInternalServerError, w)
		return
	}

	span.SetStatus(codes.Ok, "")
	logger.Info("history reset", zap.String("session_id", sessionID))

	handlers.WriteJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// Chart handles GET /calculator/chart.
func (h *Handler) Chart(w http.ResponseWriter, _ *http.Request) {
	chart := health.Chart()

	resp := ChartResponse{Bands: make([]ChartBand, 0, len(chart))}
	for _, b := range chart {
		resp.Bands = append(resp.Bands, ChartBand{
			Range:    b.Range,
			Category: string(b.Category),
			Severity: string(b.Severity),
			Tip:      b.Tip,
		})
	}

	handlers.WriteJSON(w, http.StatusOK, resp)
}
