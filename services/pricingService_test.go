package services

import (
	"testing"

	"github.com/CyberDemon2001/Bill-Generator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenu() *models.Menu {
	return &models.Menu{
		Restaurant_id: "rest-1",
		Categories: []models.MenuCategory{
			{
				Category_id: "cat-drinks",
				Name:        "Drinks",
				Items: []models.MenuItem{
					{
						Item_id: "item-cola",
						Name:    "Cola",
						Price: []models.PriceTier{
							{Size: "Small", Amount: 20},
							{Size: "Large", Amount: 35},
						},
						Available: true,
					},
				},
			},
			{
				Category_id: "cat-starters",
				Name:        "Starters",
				Items: []models.MenuItem{
					{
						Item_id: "item-fries",
						Name:    "Fries",
						Price:   []models.PriceTier{{Size: "Regular", Amount: 49.5}},
					},
				},
			},
		},
	}
}

func TestPriceOrder_ColaExample(t *testing.T) {
	priced, err := PriceOrder(testMenu(), []OrderLineRequest{
		{CategoryID: "cat-drinks", MenuItemID: "item-cola", Size: "Small", Quantity: 2},
	}, 0, 0)

	require.NoError(t, err)
	require.Len(t, priced.Items, 1)

	line := priced.Items[0]
	assert.Equal(t, "Cola", line.Name)
	assert.Equal(t, "Small", line.Size)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 20.0, line.Price)
	assert.Equal(t, 40.0, line.Total)

	assert.Equal(t, 40.0, priced.Subtotal)
	assert.Equal(t, 0.0, priced.Tax)
	assert.Equal(t, 0.0, priced.Discount)
	assert.Equal(t, 40.0, priced.TotalAmount)
}

func TestPriceOrder_SubtotalIsSumOfLineTotals(t *testing.T) {
	priced, err := PriceOrder(testMenu(), []OrderLineRequest{
		{CategoryID: "cat-drinks", MenuItemID: "item-cola", Size: "Large", Quantity: 3},
		{CategoryID: "cat-starters", MenuItemID: "item-fries", Size: "Regular", Quantity: 2},
	}, 0, 0)

	require.NoError(t, err)
	require.Len(t, priced.Items, 2)

	var sum float64
	for _, line := range priced.Items {
		assert.Equal(t, line.Price*float64(line.Quantity), line.Total)
		sum += line.Total
	}
	assert.Equal(t, sum, priced.Subtotal)
	assert.Equal(t, 204.0, priced.Subtotal)
}

func TestPriceOrder_TaxAndDiscount(t *testing.T) {
	priced, err := PriceOrder(testMenu(), []OrderLineRequest{
		{CategoryID: "cat-drinks", MenuItemID: "item-cola", Size: "Small", Quantity: 5},
	}, 0.05, 10)

	require.NoError(t, err)
	assert.Equal(t, 100.0, priced.Subtotal)
	assert.Equal(t, 5.0, priced.Tax)
	assert.Equal(t, 10.0, priced.Discount)
	// total = subtotal + tax - discount
	assert.Equal(t, 95.0, priced.TotalAmount)
}

func TestPriceOrder_Failures(t *testing.T) {
	tests := []struct {
		name         string
		lines        []OrderLineRequest
		wantNotFound bool
		wantMessage  string
	}{
		{
			name:        "no_lines",
			lines:       nil,
			wantMessage: "At least one item is required",
		},
		{
			name:        "missing_fields",
			lines:       []OrderLineRequest{{CategoryID: "cat-drinks", Quantity: 1}},
			wantMessage: "Each item must include categoryId, menuItemId, size, and quantity",
		},
		{
			name:        "zero_quantity",
			lines:       []OrderLineRequest{{CategoryID: "cat-drinks", MenuItemID: "item-cola", Size: "Small", Quantity: 0}},
			wantMessage: "Quantity must be at least 1",
		},
		{
			name:        "negative_quantity",
			lines:       []OrderLineRequest{{CategoryID: "cat-drinks", MenuItemID: "item-cola", Size: "Small", Quantity: -2}},
			wantMessage: "Quantity must be at least 1",
		},
		{
			name:         "unknown_category",
			lines:        []OrderLineRequest{{CategoryID: "cat-nope", MenuItemID: "item-cola", Size: "Small", Quantity: 1}},
			wantNotFound: true,
			wantMessage:  "Category cat-nope not found",
		},
		{
			name:         "unknown_item",
			lines:        []OrderLineRequest{{CategoryID: "cat-drinks", MenuItemID: "item-nope", Size: "Small", Quantity: 1}},
			wantNotFound: true,
			wantMessage:  "Item item-nope not found in category cat-drinks",
		},
		{
			name:        "size_not_available",
			lines:       []OrderLineRequest{{CategoryID: "cat-drinks", MenuItemID: "item-cola", Size: "Medium", Quantity: 1}},
			wantMessage: "Size 'Medium' not available for item 'Cola'",
		},
		{
			name: "any_bad_line_aborts_whole_order",
			lines: []OrderLineRequest{
				{CategoryID: "cat-drinks", MenuItemID: "item-cola", Size: "Small", Quantity: 1},
				{CategoryID: "cat-drinks", MenuItemID: "item-cola", Size: "Medium", Quantity: 1},
			},
			wantMessage: "Size 'Medium' not available for item 'Cola'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priced, err := PriceOrder(testMenu(), tt.lines, 0, 0)
			require.Error(t, err)
			assert.Nil(t, priced)

			if tt.wantNotFound {
				var nfErr *NotFoundError
				require.ErrorAs(t, err, &nfErr)
				assert.Equal(t, tt.wantMessage, nfErr.Message)
			} else {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantMessage, vErr.Message)
			}
		})
	}
}

// The snapshot must stay fixed even if the menu changes afterwards.
func TestPriceOrder_SnapshotDecoupledFromMenu(t *testing.T) {
	menu := testMenu()
	priced, err := PriceOrder(menu, []OrderLineRequest{
		{CategoryID: "cat-drinks", MenuItemID: "item-cola", Size: "Small", Quantity: 1},
	}, 0, 0)
	require.NoError(t, err)

	menu.Categories[0].Items[0].Name = "Cola Zero"
	menu.Categories[0].Items[0].Price[0].Amount = 99

	assert.Equal(t, "Cola", priced.Items[0].Name)
	assert.Equal(t, 20.0, priced.Items[0].Price)
	assert.Equal(t, 20.0, priced.Items[0].Total)
}
