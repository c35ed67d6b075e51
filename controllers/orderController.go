package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "github.com/CyberDemon2001/Bill-Generator/config"
	"github.com/CyberDemon2001/Bill-Generator/helper"
	middleware "github.com/CyberDemon2001/Bill-Generator/middlewares"
	"github.com/CyberDemon2001/Bill-Generator/models"
	"github.com/CyberDemon2001/Bill-Generator/services"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")

// taxRate reads TAX_RATE from the environment; the stored tax field stays in
// the order schema even while the rate is 0.
func taxRate() float64 {
	if v := os.Getenv("TAX_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate >= 0 {
			return rate
		}
	}
	return 0
}

// CreateOrder re-validates the requested lines against the authoritative
// menu, prices them and persists an immutable snapshot. Any resolution
// failure aborts the whole order; no partial orders are written.
func CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	restaurantID, ok := middleware.GetRestaurantID(r)
	if !ok {
		helper.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		CustomerName  string                      `json:"customerName"`
		Items         []services.OrderLineRequest `json:"items"`
		PaymentMethod string                      `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.CustomerName) == "" || len(req.Items) == 0 {
		helper.RespondError(w, http.StatusBadRequest, "customerName and at least one item are required")
		return
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}
	if paymentMethod != "cash" && paymentMethod != "card" && paymentMethod != "upi" {
		helper.RespondError(w, http.StatusBadRequest, "Invalid payment method")
		return
	}

	var menu models.Menu
	err := menuCollection.FindOne(ctx, bson.M{"restaurant_id": restaurantID}).Decode(&menu)
	if errors.Is(err, mongo.ErrNoDocuments) {
		helper.RespondError(w, http.StatusNotFound, "Menu not found for this restaurant")
		return
	} else if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error creating order")
		return
	}

	priced, err := services.PriceOrder(&menu, req.Items, taxRate(), 0)
	if err != nil {
		var nfErr *services.NotFoundError
		if errors.As(err, &nfErr) {
			helper.RespondError(w, http.StatusNotFound, nfErr.Message)
			return
		}
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			helper.RespondError(w, http.StatusBadRequest, vErr.Message)
			return
		}
		helper.RespondError(w, http.StatusInternalServerError, "Error creating order")
		return
	}

	order := models.Order{
		ID:            primitive.NewObjectID(),
		Restaurant_id: restaurantID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		Items:         priced.Items,
		PaymentMethod: paymentMethod,
		Subtotal:      priced.Subtotal,
		Tax:           priced.Tax,
		Discount:      priced.Discount,
		TotalAmount:   priced.TotalAmount,
		Created_at:    time.Now(),
	}
	order.Order_id = order.ID.Hex()

	if _, insertErr := orderCollection.InsertOne(ctx, order); insertErr != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Order was not created")
		return
	}

	helper.RespondJSON(w, http.StatusCreated, order)
}

// GetOrders lists the caller's orders newest first, optionally filtered to
// one UTC calendar day via ?date=YYYY-MM-DD.
func GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	restaurantID, ok := middleware.GetRestaurantID(r)
	if !ok {
		helper.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	query := bson.M{"restaurant_id": restaurantID}

	if date := r.URL.Query().Get("date"); date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
		if err != nil {
			helper.RespondError(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		query["created_at"] = bson.M{
			"$gte": day,
			"$lt":  day.AddDate(0, 0, 1),
		}
	}

	cursor, err := orderCollection.Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error retrieving orders")
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error decoding orders")
		return
	}

	helper.RespondJSON(w, http.StatusOK, orders)
}
