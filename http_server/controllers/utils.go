package controllers

import (
	"encoding/json"
	"github.com/codesync/autocomplete-server/models"
	"github.com/codesync/autocomplete-server/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"net/http"
)

// StatusFor maps a failure kind to an HTTP status. Every kind is reported as
// 500 so that callers see one uniform error shape.
func StatusFor(kind service.FailureKind) int {
	return http.StatusInternalServerError
}

func ReturnJson(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(v); err != nil {
		log.Debug().Err(err).Int("status", status).Msg("writing response body failed")
	}
}

// ReturnHttpErrorResponse writes {"error": err.Error()} and logs the failure.
func ReturnHttpErrorResponse(rw http.ResponseWriter, r *http.Request, err error) {
	kind := service.KindOf(err)
	zerolog.Ctx(r.Context()).Warn().
		Str("kind", string(kind)).
		Err(err).
		Msg("autocomplete failed")
	ReturnJson(rw, StatusFor(kind), models.ErrorResponse{Error: err.Error()})
}
