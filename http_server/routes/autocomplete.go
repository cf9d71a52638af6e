package routes

import (
	"github.com/codesync/autocomplete-server/http_server/controllers"
	"github.com/codesync/autocomplete-server/service"
	"github.com/gorilla/mux"
)

func AutocompleteRoute(router *mux.Router, s *service.Service) {
	router.HandleFunc("/autocomplete", controllers.Autocomplete(s)).Methods("POST")
}
