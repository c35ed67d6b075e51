package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	database "github.com/CyberDemon2001/Bill-Generator/config"
	"github.com/CyberDemon2001/Bill-Generator/helper"
	middleware "github.com/CyberDemon2001/Bill-Generator/middlewares"
	"github.com/CyberDemon2001/Bill-Generator/models"
	"github.com/CyberDemon2001/Bill-Generator/services"
	"github.com/go-playground/validator"
)

var restaurantCollection *mongo.Collection = database.OpenCollection(database.Client, "restaurant")
var validate = validator.New()

type createRestaurantRequest struct {
	RestaurantName string `json:"restaurantName" validate:"required,min=2,max=100"`
	Address        string `json:"address" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
}

// restaurantProfile is the restaurant as returned to clients: no password,
// and no email unless the caller just authenticated with it.
type restaurantProfile struct {
	RestaurantID     string                  `json:"restaurantId"`
	RestaurantName   string                  `json:"restaurantName"`
	Address          string                  `json:"address"`
	Phone            string                  `json:"phone"`
	Email            string                  `json:"email,omitempty"`
	SubscriptionPlan models.SubscriptionPlan `json:"subscriptionPlan"`
	CreatedAt        time.Time               `json:"createdAt"`
	UpdatedAt        time.Time               `json:"updatedAt"`
}

func toProfile(r models.Restaurant, withEmail bool) restaurantProfile {
	p := restaurantProfile{
		RestaurantID:     r.Restaurant_id,
		RestaurantName:   r.RestaurantName,
		Address:          r.Address,
		Phone:            r.Phone,
		SubscriptionPlan: r.SubscriptionPlan,
		CreatedAt:        r.Created_at,
		UpdatedAt:        r.Updated_at,
	}
	if withEmail {
		p.Email = r.Email
	}
	return p
}

// Create a restaurant account. Seeds the 10-day trial window.
func CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var req createRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	count, err := restaurantCollection.CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error creating restaurant")
		return
	}
	if count > 0 {
		helper.RespondError(w, http.StatusBadRequest, "Email is already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error creating restaurant")
		return
	}

	now := time.Now()
	restaurant := models.Restaurant{
		ID:               primitive.NewObjectID(),
		RestaurantName:   req.RestaurantName,
		Address:          req.Address,
		Phone:            req.Phone,
		Email:            req.Email,
		Password:         string(hashed),
		SubscriptionPlan: services.TrialPlan(now),
		Created_at:       now,
		Updated_at:       now,
	}
	restaurant.Restaurant_id = restaurant.ID.Hex()

	if _, err := restaurantCollection.InsertOne(ctx, restaurant); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error creating restaurant")
		return
	}

	helper.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Restaurant created successfully",
		"restaurant": toProfile(restaurant, true),
	})
}

// Login verifies credentials, rejects expired subscriptions and issues the
// session token as both a cookie and a response field.
func Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		helper.RespondError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	var restaurant models.Restaurant
	err := restaurantCollection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&restaurant)
	if err != nil {
		// Same message as a bad password so account existence is not leaked.
		helper.RespondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(restaurant.Password), []byte(req.Password)); err != nil {
		helper.RespondError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if services.Expired(restaurant.SubscriptionPlan, time.Now()) {
		// Deactivation is idempotent; repeated expired logins keep it false.
		_, updateErr := restaurantCollection.UpdateOne(ctx,
			bson.M{"restaurant_id": restaurant.Restaurant_id},
			bson.M{"$set": bson.M{"subscription_plan.is_active": false, "updated_at": time.Now()}},
		)
		if updateErr != nil {
			helper.RespondError(w, http.StatusInternalServerError, "Error logging in")
			return
		}
		helper.RespondError(w, http.StatusForbidden, "Trial period has ended. Please upgrade your subscription.")
		return
	}

	token, err := helper.GenerateToken(restaurant.Restaurant_id)
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error logging in")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(helper.TokenLifetime.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Login successful",
		"token":      token,
		"restaurant": toProfile(restaurant, true),
	})
}

// Get the authenticated restaurant's profile (no password, no email).
func GetRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	restaurantID, ok := middleware.GetRestaurantID(r)
	if !ok {
		helper.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var restaurant models.Restaurant
	err := restaurantCollection.FindOne(ctx, bson.M{"restaurant_id": restaurantID}).Decode(&restaurant)
	if err != nil {
		helper.RespondError(w, http.StatusNotFound, "Restaurant not found")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"restaurant": toProfile(restaurant, false),
	})
}

// Update the authenticated restaurant's profile. Email and password are not
// updatable through this route.
func UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	restaurantID, ok := middleware.GetRestaurantID(r)
	if !ok {
		helper.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		RestaurantName string `json:"restaurantName"`
		Address        string `json:"address"`
		Phone          string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updateObj := bson.D{}
	if req.RestaurantName != "" {
		updateObj = append(updateObj, bson.E{Key: "restaurant_name", Value: req.RestaurantName})
	}
	if req.Address != "" {
		updateObj = append(updateObj, bson.E{Key: "address", Value: req.Address})
	}
	if req.Phone != "" {
		updateObj = append(updateObj, bson.E{Key: "phone", Value: req.Phone})
	}
	if len(updateObj) == 0 {
		helper.RespondError(w, http.StatusBadRequest, "No fields provided for update")
		return
	}
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	result, err := restaurantCollection.UpdateOne(ctx,
		bson.M{"restaurant_id": restaurantID},
		bson.D{{Key: "$set", Value: updateObj}},
	)
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error updating restaurant")
		return
	}
	if result.MatchedCount == 0 {
		helper.RespondError(w, http.StatusNotFound, "Restaurant not found")
		return
	}

	var restaurant models.Restaurant
	if err := restaurantCollection.FindOne(ctx, bson.M{"restaurant_id": restaurantID}).Decode(&restaurant); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error updating restaurant")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Restaurant updated successfully",
		"restaurant": toProfile(restaurant, false),
	})
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiry; there is no server-side revocation list.
func Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})

	helper.RespondJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}
