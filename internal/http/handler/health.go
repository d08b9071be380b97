package handler

import "net/http"

var Health = "GET /healthz"

// HandleHealth answers in the common envelope.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"success":true,"data":{"status":"ok"}}` + "\n"))
}
