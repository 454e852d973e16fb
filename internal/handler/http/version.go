package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.buildInfo.BuildVersion()
	if serverVersion == "" {
		serverVersion = "N/A"
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// getHealth answers the readiness probe.
func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}
