package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/CyberDemon2001/Bill-Generator/helper"
	"github.com/CyberDemon2001/Bill-Generator/services"
)

// ChangeSubscriptionPlan switches a restaurant to a new plan by email. The
// request arrives from the payment flow outside an authenticated session.
func ChangeSubscriptionPlan(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var req struct {
		Email   string `json:"email"`
		NewPlan string `json:"newPlan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	plan, err := services.NewPlan(req.NewPlan, time.Now())
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			helper.RespondError(w, http.StatusBadRequest, vErr.Message)
			return
		}
		helper.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	result, err := restaurantCollection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"subscription_plan": plan, "updated_at": time.Now()}},
	)
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if result.MatchedCount == 0 {
		helper.RespondError(w, http.StatusNotFound, "Restaurant not found")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message":          "Subscription plan updated successfully",
		"subscriptionPlan": plan,
	})
}
