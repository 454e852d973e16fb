package http

import (
	"errors"
	"io/fs"
	"net/http"
)

var errorStatusMap = map[error]int{
	fs.ErrNotExist:   http.StatusNotFound,
	fs.ErrPermission: http.StatusForbidden,
	fs.ErrInvalid:    http.StatusBadRequest,
	ErrIgnoredFile:   http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		h.logger.Err(err).Str("path", r.URL.Path).Msg("error serving file")
	}
	http.Error(w, http.StatusText(status), status)
}
