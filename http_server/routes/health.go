package routes

import (
	"github.com/codesync/autocomplete-server/config"
	"github.com/codesync/autocomplete-server/http_server/controllers"
	"github.com/gorilla/mux"
)

func HealthRoute(router *mux.Router, cfg *config.Config) {
	router.HandleFunc("/health", controllers.Health(cfg)).Methods("GET")
}
