package handler

import (
	"net/http"
)

// Health handles GET /health. Hosting platforms poll it to keep the service awake.
func Health(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "Server is running")
}

// Root handles GET / with a plain-text liveness acknowledgement.
func Root(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "Server is running!!!")
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
