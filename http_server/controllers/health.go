package controllers

import (
	"github.com/codesync/autocomplete-server/config"
	"github.com/codesync/autocomplete-server/models"
	"net/http"
)

func Health(cfg *config.Config) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		ReturnJson(rw, http.StatusOK, models.HealthResponse{
			Status:   "ok",
			Provider: cfg.Provider,
			Model:    cfg.Model,
		})
	}
}
