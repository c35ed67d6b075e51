package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
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

var menuCollection *mongo.Collection = database.OpenCollection(database.Client, "menu")

// UpsertCategories creates the restaurant's menu on first call; afterwards it
// merges by category name (case-insensitive) and appends the new items.
// Resubmitting the same payload appends the same items again. Validation runs
// before any write, so a malformed payload never partially applies.
func UpsertCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	restaurantID, ok := middleware.GetRestaurantID(r)
	if !ok {
		helper.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		Categories []models.MenuCategory `json:"categories"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := services.ValidateCategories(req.Categories); err != nil {
		helper.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	var menu models.Menu
	err := menuCollection.FindOne(ctx, bson.M{"restaurant_id": restaurantID}).Decode(&menu)
	if errors.Is(err, mongo.ErrNoDocuments) {
		services.AssignIDs(req.Categories)
		menu = models.Menu{
			ID:            primitive.NewObjectID(),
			Restaurant_id: restaurantID,
			Categories:    req.Categories,
			Created_at:    time.Now(),
			Updated_at:    time.Now(),
		}
		menu.Menu_id = menu.ID.Hex()

		if _, insertErr := menuCollection.InsertOne(ctx, menu); insertErr != nil {
			helper.RespondError(w, http.StatusInternalServerError, "Menu was not created")
			return
		}
		helper.RespondJSON(w, http.StatusCreated, menu)
		return
	} else if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error loading menu")
		return
	}

	menu.Categories = services.MergeCategories(menu.Categories, req.Categories)
	menu.Updated_at = time.Now()

	_, err = menuCollection.UpdateOne(ctx,
		bson.M{"restaurant_id": restaurantID},
		bson.M{"$set": bson.M{"categories": menu.Categories, "updated_at": menu.Updated_at}},
	)
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Menu was not updated")
		return
	}

	helper.RespondJSON(w, http.StatusCreated, menu)
}

// GetMenu returns the full category/item tree for the caller's restaurant.
func GetMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	restaurantID, ok := middleware.GetRestaurantID(r)
	if !ok {
		helper.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var menu models.Menu
	err := menuCollection.FindOne(ctx, bson.M{"restaurant_id": restaurantID}).Decode(&menu)
	if err != nil {
		helper.RespondError(w, http.StatusNotFound, "Menu not found")
		return
	}

	helper.RespondJSON(w, http.StatusOK, menu)
}

// RenameCategory sets a category's name with a single positional update, so
// concurrent edits to other parts of the menu are never clobbered.
func RenameCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	restaurantID, ok := middleware.GetRestaurantID(r)
	if !ok {
		helper.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID := mux.Vars(r)["categoryId"]

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		helper.RespondError(w, http.StatusBadRequest, "Category name is required")
		return
	}

	filter := bson.M{
		"restaurant_id":          restaurantID,
		"categories.category_id": categoryID,
	}
	update := bson.M{"$set": bson.M{
		"categories.$.name": name,
		"updated_at":        time.Now(),
	}}

	var menu models.Menu
	err := menuCollection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&menu)
	if errors.Is(err, mongo.ErrNoDocuments) {
		helper.RespondError(w, http.StatusNotFound, "Menu or category not found")
		return
	} else if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error updating category")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Category updated successfully",
		"menu":    menu,
	})
}

// UpdateMenuItem patches any subset of {name, description, price} on one item
// via arrayFilters. An empty patch is rejected before touching the store.
func UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	restaurantID, ok := middleware.GetRestaurantID(r)
	if !ok {
		helper.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	params := mux.Vars(r)
	categoryID := params["categoryId"]
	itemID := params["itemId"]

	var req struct {
		Name        string             `json:"name"`
		Description string             `json:"description"`
		Price       []models.PriceTier `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updateFields := bson.M{}
	if strings.TrimSpace(req.Name) != "" {
		updateFields["categories.$[cat].items.$[item].name"] = strings.TrimSpace(req.Name)
	}
	if strings.TrimSpace(req.Description) != "" {
		updateFields["categories.$[cat].items.$[item].description"] = strings.TrimSpace(req.Description)
	}
	if req.Price != nil {
		for _, p := range req.Price {
			if strings.TrimSpace(p.Size) == "" || p.Amount < 0 {
				helper.RespondError(w, http.StatusBadRequest, "Invalid price format")
				return
			}
		}
		updateFields["categories.$[cat].items.$[item].price"] = req.Price
	}

	if len(updateFields) == 0 {
		helper.RespondError(w, http.StatusBadRequest, "No fields provided for update")
		return
	}
	updateFields["updated_at"] = time.Now()

	// Matching the category/item pair in the filter makes a bogus id a 404
	// instead of a silent no-op.
	filter := bson.M{
		"restaurant_id": restaurantID,
		"categories": bson.M{"$elemMatch": bson.M{
			"category_id":   categoryID,
			"items.item_id": itemID,
		}},
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetArrayFilters(options.ArrayFilters{Filters: []interface{}{
			bson.M{"cat.category_id": categoryID},
			bson.M{"item.item_id": itemID},
		}})

	var menu models.Menu
	err := menuCollection.FindOneAndUpdate(ctx, filter, bson.M{"$set": updateFields}, opts).Decode(&menu)
	if errors.Is(err, mongo.ErrNoDocuments) {
		helper.RespondError(w, http.StatusNotFound, "Menu, category, or item not found")
		return
	} else if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error updating menu item")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Menu item updated successfully",
		"menu":    menu,
	})
}

// DeleteCategory removes one category subtree; siblings are untouched.
func DeleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	restaurantID, ok := middleware.GetRestaurantID(r)
	if !ok {
		helper.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	categoryID := mux.Vars(r)["categoryId"]

	filter := bson.M{
		"restaurant_id":          restaurantID,
		"categories.category_id": categoryID,
	}
	update := bson.M{
		"$pull": bson.M{"categories": bson.M{"category_id": categoryID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	var menu models.Menu
	err := menuCollection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&menu)
	if errors.Is(err, mongo.ErrNoDocuments) {
		helper.RespondError(w, http.StatusNotFound, "Menu or category not found")
		return
	} else if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error deleting category")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Category deleted successfully",
		"menu":    menu,
	})
}

// DeleteMenuItem removes one item from a category.
func DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	restaurantID, ok := middleware.GetRestaurantID(r)
	if !ok {
		helper.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	params := mux.Vars(r)
	categoryID := params["categoryId"]
	itemID := params["itemId"]

	filter := bson.M{
		"restaurant_id": restaurantID,
		"categories": bson.M{"$elemMatch": bson.M{
			"category_id":   categoryID,
			"items.item_id": itemID,
		}},
	}
	update := bson.M{
		"$pull": bson.M{"categories.$.items": bson.M{"item_id": itemID}},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	var menu models.Menu
	err := menuCollection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&menu)
	if errors.Is(err, mongo.ErrNoDocuments) {
		helper.RespondError(w, http.StatusNotFound, "Menu, category, or item not found")
		return
	} else if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error deleting menu item")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Item deleted successfully",
		"menu":    menu,
	})
}
