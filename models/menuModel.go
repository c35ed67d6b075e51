package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PriceTier is one sellable variant of an item: a size label plus its amount.
type PriceTier struct {
	Size   string  `bson:"size" json:"size" validate:"required"`
	Amount float64 `bson:"amount" json:"amount" validate:"gte=0"`
}

type MenuItem struct {
	Item_id     string      `bson:"item_id" json:"itemId"`
	Name        string      `bson:"name" json:"name" validate:"required"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	Price       []PriceTier `bson:"price" json:"price" validate:"required,min=1,dive"`
	Available   bool        `bson:"available" json:"available"`
}

type MenuCategory struct {
	Category_id string     `bson:"category_id" json:"categoryId"`
	Name        string     `bson:"name" json:"name" validate:"required"`
	Items       []MenuItem `bson:"items" json:"items" validate:"required,min=1,dive"`
}

// Menu is the single nested document owned by a restaurant. Category and item
// ids are generated server-side at creation and stay stable across merges.
type Menu struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Menu_id       string             `bson:"menu_id" json:"menuId"`
	Restaurant_id string             `bson:"restaurant_id" json:"restaurantId"`
	Categories    []MenuCategory     `bson:"categories" json:"categories"`
	Created_at    time.Time          `bson:"created_at" json:"createdAt"`
	Updated_at    time.Time          `bson:"updated_at" json:"updatedAt"`
}
