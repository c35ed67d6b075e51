package routes

import (
	"net/http"

	controller "github.com/CyberDemon2001/Bill-Generator/controllers"
	"github.com/gorilla/mux"
)

func OrderProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/orders", controller.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders", controller.GetOrders).Methods(http.MethodGet)
}
