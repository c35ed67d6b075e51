package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscriptionPlan tracks the trial/paid window for a restaurant. Login is
// refused once EndDate has passed.
type SubscriptionPlan struct {
	Plan      string    `bson:"plan" json:"plan" validate:"eq=trial|eq=monthly|eq=yearly"`
	StartDate time.Time `bson:"start_date" json:"startDate"`
	EndDate   time.Time `bson:"end_date" json:"endDate"`
	IsActive  bool      `bson:"is_active" json:"isActive"`
}

type Restaurant struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Restaurant_id    string             `bson:"restaurant_id" json:"restaurantId"`
	RestaurantName   string             `bson:"restaurant_name" json:"restaurantName" validate:"required,min=2,max=100"`
	Address          string             `bson:"address" json:"address" validate:"required"`
	Phone            string             `bson:"phone" json:"phone" validate:"required"`
	Email            string             `bson:"email" json:"email" validate:"required,email"`
	Password         string             `bson:"password" json:"-"`
	SubscriptionPlan SubscriptionPlan   `bson:"subscription_plan" json:"subscriptionPlan"`
	Created_at       time.Time          `bson:"created_at" json:"createdAt"`
	Updated_at       time.Time          `bson:"updated_at" json:"updatedAt"`
}
