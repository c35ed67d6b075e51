package routes

import (
	"net/http"

	controller "github.com/CyberDemon2001/Bill-Generator/controllers"
	"github.com/gorilla/mux"
)

func MenuProtectedRoutes(router *mux.Router) {

	router.HandleFunc("/menu", controller.UpsertCategories).Methods(http.MethodPost)
	router.HandleFunc("/menu", controller.GetMenu).Methods(http.MethodGet)

	router.HandleFunc("/menu/{categoryId}", controller.RenameCategory).Methods(http.MethodPut)
	router.HandleFunc("/menu/{categoryId}", controller.DeleteCategory).Methods(http.MethodDelete)

	router.HandleFunc("/menu/{categoryId}/items/{itemId}", controller.UpdateMenuItem).Methods(http.MethodPut)
	router.HandleFunc("/menu/{categoryId}/items/{itemId}", controller.DeleteMenuItem).Methods(http.MethodDelete)
}
