package routes

import (
	"net/http"

	controller "github.com/CyberDemon2001/Bill-Generator/controllers"
	"github.com/gorilla/mux"
)

func RestaurantPublicRoutes(router *mux.Router) {
	router.HandleFunc("/restaurants/create", controller.CreateRestaurant).Methods(http.MethodPost)
	router.HandleFunc("/restaurants/login", controller.Login).Methods(http.MethodPost)
	router.HandleFunc("/restaurants/subscription", controller.ChangeSubscriptionPlan).Methods(http.MethodPost)
}

func RestaurantProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/restaurants/", controller.GetRestaurant).Methods(http.MethodGet)
	router.HandleFunc("/restaurants/update", controller.UpdateRestaurant).Methods(http.MethodPut)
	router.HandleFunc("/restaurants/logout", controller.Logout).Methods(http.MethodPost)
}
