package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"orbital/internal/core"
	"orbital/internal/http/handler/middleware"
	"orbital/internal/nasa"

	"go.uber.org/zap"
)

// responder writes envelopes and maps service errors to status codes.
type responder struct {
	logs *zap.SugaredLogger
}

func (h responder) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	body, err := json.Marshal(resp)
	if err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
		code = http.StatusInternalServerError
		body, _ = json.Marshal(Response{Error: oopsErr})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(append(body, '\n')); err != nil {
		h.logs.Debugw("failed to write response",
			"error", err,
			"request_id", requestId)
	}
}

func (h responder) ok(w http.ResponseWriter, data any, requestId string) {
	h.respond(w, Response{Success: true, Data: data}, http.StatusOK, requestId)
}

func (h responder) badRequest(w http.ResponseWriter, message string, err error, handler, requestId string) {
	h.respond(w, Response{
		Message: message,
		Error:   err.Error(),
	}, http.StatusBadRequest,
		requestId)
	h.logs.Errorw("invalid request",
		"error", err,
		"handler", handler,
		"request_id", requestId)
}

// fail answers with the status matching err. Details of internal and upstream
// failures are logged but not returned.
func (h responder) fail(w http.ResponseWriter, message string, err error, handler, requestId string) {
	resp := Response{Message: message}

	var code int
	switch {
	case errors.Is(err, core.ErrValidation):
		code = http.StatusBadRequest
		resp.Error = err.Error()
	case errors.Is(err, core.ErrNotFound):
		code = http.StatusNotFound
		resp.Error = err.Error()
	case errors.Is(err, nasa.ErrUpstream):
		code = http.StatusInternalServerError
		resp.Error = nasa.ErrUpstream.Error()
	default:
		code = http.StatusInternalServerError
		resp.Error = oopsErr
	}

	h.respond(w, resp, code, requestId)
	h.logs.Errorw(message,
		"error", err,
		"status", code,
		"handler", handler,
		"request_id", requestId)
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}
