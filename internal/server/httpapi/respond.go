package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/avolkovs/benfordapp/internal/common"
	"github.com/avolkovs/benfordapp/internal/server/services"
)

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, errorResponse{StatusCode: code, Message: message})
}

// writeServiceError maps a service-layer error onto the wire. Classification
// goes by sentinel; the diagnostic of a failed job keeps its recorded first
// line in the message.
func writeServiceError(w http.ResponseWriter, err error) {
	var failure *services.JobFailure
	if errors.As(err, &failure) {
		writeError(w, http.StatusInternalServerError, failure.Error())
		return
	}

	switch {
	case errors.Is(err, common.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, messageOf(err, common.ErrInvalidInput))
	case errors.Is(err, common.ErrJobNotReady):
		writeError(w, http.StatusBadRequest, common.ErrJobNotReady.Error())
	case errors.Is(err, common.ErrJobEmptyResult):
		writeError(w, http.StatusBadRequest, "ERROR: "+common.ErrJobEmptyResult.Error())
	case errors.Is(err, common.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, messageOf(err, common.ErrUnauthorized))
	case errors.Is(err, common.ErrForbidden):
		writeError(w, http.StatusForbidden, messageOf(err, common.ErrForbidden))
	case errors.Is(err, common.ErrNotFound):
		writeError(w, http.StatusNotFound, messageOf(err, common.ErrNotFound))
	case errors.Is(err, common.ErrJobUnknownFailure):
		writeError(w, http.StatusInternalServerError, common.ErrJobUnknownFailure.Error())
	case errors.Is(err, common.ErrJobUnexpectedState):
		writeError(w, http.StatusInternalServerError, "ERROR: "+err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// messageOf strips the sentinel prefix a service error was wrapped with,
// leaving the human-readable detail for the response body.
func messageOf(err, sentinel error) string {
	if rest, ok := strings.CutPrefix(err.Error(), sentinel.Error()+": "); ok {
		return rest
	}
	return err.Error()
}
