package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/CyberDemon2001/Bill-Generator/models"
)

// OrderLineRequest is one requested (category, item, size, quantity) tuple.
type OrderLineRequest struct {
	CategoryID string `json:"categoryId"`
	MenuItemID string `json:"menuItemId"`
	Size       string `json:"size"`
	Quantity   int    `json:"quantity"`
}

// PricedOrder is the result of resolving every requested line against the
// menu: a price snapshot decoupled from the live document.
type PricedOrder struct {
	Items       []models.OrderItem
	Subtotal    float64
	Tax         float64
	Discount    float64
	TotalAmount float64
}

// PriceOrder resolves each requested line against the menu and computes the
// monetary fields. Any line that fails to resolve aborts the whole order.
//
// Resolution per line: category by id, item by id within that category, then
// the price tier whose size label exactly matches the request. The matched
// amount becomes the unit price and line total = unit price × quantity.
func PriceOrder(menu *models.Menu, lines []OrderLineRequest, taxRate, discount float64) (*PricedOrder, error) {
	if len(lines) == 0 {
		return nil, &ValidationError{Message: "At least one item is required"}
	}

	var orderItems []models.OrderItem
	var subtotal float64

	for _, line := range lines {
		if line.CategoryID == "" || line.MenuItemID == "" || strings.TrimSpace(line.Size) == "" {
			return nil, &ValidationError{Message: "Each item must include categoryId, menuItemId, size, and quantity"}
		}
		if line.Quantity < 1 {
			return nil, &ValidationError{Message: "Quantity must be at least 1"}
		}

		category := findCategory(menu, line.CategoryID)
		if category == nil {
			return nil, &NotFoundError{Message: fmt.Sprintf("Category %s not found", line.CategoryID)}
		}

		item := findItem(category, line.MenuItemID)
		if item == nil {
			return nil, &NotFoundError{Message: fmt.Sprintf("Item %s not found in category %s", line.MenuItemID, line.CategoryID)}
		}

		tier := findTier(item, line.Size)
		if tier == nil {
			return nil, &ValidationError{Message: fmt.Sprintf("Size '%s' not available for item '%s'", line.Size, item.Name)}
		}

		unitPrice := tier.Amount
		total := unitPrice * float64(line.Quantity)
		subtotal += total

		orderItems = append(orderItems, models.OrderItem{
			Menu_item_id: item.Item_id,
			Category_id:  category.Category_id,
			Name:         item.Name,
			Size:         tier.Size,
			Quantity:     line.Quantity,
			Price:        unitPrice,
			Total:        total,
		})
	}

	tax := round2(subtotal * taxRate)
	totalAmount := round2(subtotal + tax - discount)

	return &PricedOrder{
		Items:       orderItems,
		Subtotal:    round2(subtotal),
		Tax:         tax,
		Discount:    discount,
		TotalAmount: totalAmount,
	}, nil
}

func findCategory(menu *models.Menu, categoryID string) *models.MenuCategory {
	for i := range menu.Categories {
		if menu.Categories[i].Category_id == categoryID {
			return &menu.Categories[i]
		}
	}
	return nil
}

func findItem(category *models.MenuCategory, itemID string) *models.MenuItem {
	for i := range category.Items {
		if category.Items[i].Item_id == itemID {
			return &category.Items[i]
		}
	}
	return nil
}

func findTier(item *models.MenuItem, size string) *models.PriceTier {
	for i := range item.Price {
		if item.Price[i].Size == size {
			return &item.Price[i]
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
