package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const panicErr = "Oops! Something went wrong. Please try again later."

type recoveryMiddleware struct {
	logs *zap.SugaredLogger
}

func NewRecoveryMiddleware(logger *zap.SugaredLogger) *recoveryMiddleware {
	return &recoveryMiddleware{
		logs: logger,
	}
}

// Recovery turns a panicking handler into a 500 envelope. Nothing is written
// when the handler already started its response.
func (m *recoveryMiddleware) Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newStatusRecorder(w)

		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			if recovered == http.ErrAbortHandler {
				panic(recovered)
			}

			requestId, _ := r.Context().Value(RequestIDKey).(string)
			m.logs.Errorw("handler panicked",
				"panic", recovered,
				"path", r.URL.Path,
				"request_id", requestId)

			if rec.wroteHeader {
				return
			}
			rec.Header().Set("Content-Type", "application/json")
			rec.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(rec).Encode(map[string]any{
				"success": false,
				"error":   panicErr,
			})
		}()

		next.ServeHTTP(rec, r)
	})
}
