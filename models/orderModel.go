package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a snapshot of the menu item at order time. Name, size and
// price are copied from the menu so later edits never alter a saved order.
type OrderItem struct {
	Menu_item_id string  `bson:"menu_item_id" json:"menuItemId"`
	Category_id  string  `bson:"category_id" json:"categoryId"`
	Name         string  `bson:"name" json:"name"`
	Size         string  `bson:"size" json:"size"`
	Quantity     int     `bson:"quantity" json:"quantity" validate:"gte=1"`
	Price        float64 `bson:"price" json:"price"`
	Total        float64 `bson:"total" json:"total"`
}

// Order is immutable once inserted.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Order_id      string             `bson:"order_id" json:"orderId"`
	Restaurant_id string             `bson:"restaurant_id" json:"restaurantId"`
	CustomerName  string             `bson:"customer_name" json:"customerName" validate:"required"`
	Items         []OrderItem        `bson:"items" json:"items" validate:"required,min=1"`
	PaymentMethod string             `bson:"payment_method" json:"paymentMethod" validate:"eq=cash|eq=card|eq=upi"`
	Subtotal      float64            `bson:"subtotal" json:"subtotal"`
	Tax           float64            `bson:"tax" json:"tax"`
	Discount      float64            `bson:"discount" json:"discount"`
	TotalAmount   float64            `bson:"total_amount" json:"totalAmount"`
	Created_at    time.Time          `bson:"created_at" json:"createdAt"`
}
