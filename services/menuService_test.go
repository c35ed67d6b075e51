package services

import (
	"testing"

	"github.com/CyberDemon2001/Bill-Generator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drinksCategory() models.MenuCategory {
	return models.MenuCategory{
		Name: "Drinks",
		Items: []models.MenuItem{
			{
				Name: "Cola",
				Price: []models.PriceTier{
					{Size: "Small", Amount: 20},
					{Size: "Large", Amount: 35},
				},
			},
		},
	}
}

func TestValidateCategories(t *testing.T) {
	tests := []struct {
		name       string
		categories []models.MenuCategory
		wantErr    string
	}{
		{
			name:       "empty_payload",
			categories: nil,
			wantErr:    "At least one category is required",
		},
		{
			name:       "category_without_name",
			categories: []models.MenuCategory{{Name: "  ", Items: drinksCategory().Items}},
			wantErr:    "Each category must have a name",
		},
		{
			name:       "category_without_items",
			categories: []models.MenuCategory{{Name: "Drinks"}},
			wantErr:    "Category 'Drinks' must have at least one item",
		},
		{
			name: "item_without_name",
			categories: []models.MenuCategory{{
				Name:  "Drinks",
				Items: []models.MenuItem{{Price: []models.PriceTier{{Size: "Small", Amount: 20}}}},
			}},
			wantErr: "Item in category 'Drinks' must have a name",
		},
		{
			name: "item_without_price_tiers",
			categories: []models.MenuCategory{{
				Name:  "Drinks",
				Items: []models.MenuItem{{Name: "Cola"}},
			}},
			wantErr: "Item 'Cola' in category 'Drinks' must have price variations",
		},
		{
			name: "tier_with_empty_size",
			categories: []models.MenuCategory{{
				Name:  "Drinks",
				Items: []models.MenuItem{{Name: "Cola", Price: []models.PriceTier{{Size: "", Amount: 20}}}},
			}},
			wantErr: "Item 'Cola' in category 'Drinks' has invalid price format",
		},
		{
			name: "tier_with_negative_amount",
			categories: []models.MenuCategory{{
				Name:  "Drinks",
				Items: []models.MenuItem{{Name: "Cola", Price: []models.PriceTier{{Size: "Small", Amount: -1}}}},
			}},
			wantErr: "Item 'Cola' in category 'Drinks' has invalid price format",
		},
		{
			name: "tier_with_zero_amount_is_valid",
			categories: []models.MenuCategory{{
				Name:  "Drinks",
				Items: []models.MenuItem{{Name: "Water", Price: []models.PriceTier{{Size: "Regular", Amount: 0}}}},
			}},
		},
		{
			name:       "valid_payload",
			categories: []models.MenuCategory{drinksCategory()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategories(tt.categories)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantErr, vErr.Message)
		})
	}
}

func TestAssignIDs(t *testing.T) {
	categories := []models.MenuCategory{drinksCategory()}
	AssignIDs(categories)

	require.NotEmpty(t, categories[0].Category_id)
	require.NotEmpty(t, categories[0].Items[0].Item_id)
	assert.True(t, categories[0].Items[0].Available)

	// A second pass must not reassign existing ids.
	catID := categories[0].Category_id
	itemID := categories[0].Items[0].Item_id
	AssignIDs(categories)
	assert.Equal(t, catID, categories[0].Category_id)
	assert.Equal(t, itemID, categories[0].Items[0].Item_id)
}

func TestMergeCategories_AppendsToExistingCaseInsensitive(t *testing.T) {
	existing := []models.MenuCategory{drinksCategory()}
	AssignIDs(existing)
	catID := existing[0].Category_id

	incoming := []models.MenuCategory{{
		Name: "drinks",
		Items: []models.MenuItem{
			{Name: "Lemonade", Price: []models.PriceTier{{Size: "Regular", Amount: 25}}},
		},
	}}

	merged := MergeCategories(existing, incoming)

	require.Len(t, merged, 1)
	assert.Equal(t, "Drinks", merged[0].Name)
	assert.Equal(t, catID, merged[0].Category_id)
	require.Len(t, merged[0].Items, 2)
	assert.Equal(t, "Lemonade", merged[0].Items[1].Name)
	assert.NotEmpty(t, merged[0].Items[1].Item_id)
}

func TestMergeCategories_AddsNewCategory(t *testing.T) {
	existing := []models.MenuCategory{drinksCategory()}
	AssignIDs(existing)

	incoming := []models.MenuCategory{{
		Name: "Starters",
		Items: []models.MenuItem{
			{Name: "Fries", Price: []models.PriceTier{{Size: "Regular", Amount: 50}}},
		},
	}}

	merged := MergeCategories(existing, incoming)

	require.Len(t, merged, 2)
	assert.Equal(t, "Starters", merged[1].Name)
	assert.NotEmpty(t, merged[1].Category_id)
}

// Resubmitting the same payload appends the same items again. The merge is
// additive by design; this pins the current behavior.
func TestMergeCategories_ResubmitDuplicates(t *testing.T) {
	existing := []models.MenuCategory{drinksCategory()}
	AssignIDs(existing)

	payload := func() []models.MenuCategory {
		return []models.MenuCategory{{
			Name: "Drinks",
			Items: []models.MenuItem{
				{Name: "Cola", Price: []models.PriceTier{{Size: "Small", Amount: 20}}},
			},
		}}
	}

	merged := MergeCategories(existing, payload())
	merged = MergeCategories(merged, payload())

	require.Len(t, merged, 1)
	require.Len(t, merged[0].Items, 3)
	assert.Equal(t, "Cola", merged[0].Items[1].Name)
	assert.Equal(t, "Cola", merged[0].Items[2].Name)
	assert.NotEqual(t, merged[0].Items[1].Item_id, merged[0].Items[2].Item_id)
}

func TestMergeCategories_SiblingsUntouched(t *testing.T) {
	existing := []models.MenuCategory{drinksCategory(), {
		Name: "Desserts",
		Items: []models.MenuItem{
			{Name: "Brownie", Price: []models.PriceTier{{Size: "Regular", Amount: 60}}},
		},
	}}
	AssignIDs(existing)
	dessertsID := existing[1].Category_id

	incoming := []models.MenuCategory{{
		Name: "Drinks",
		Items: []models.MenuItem{
			{Name: "Iced Tea", Price: []models.PriceTier{{Size: "Regular", Amount: 30}}},
		},
	}}

	merged := MergeCategories(existing, incoming)

	require.Len(t, merged, 2)
	assert.Equal(t, dessertsID, merged[1].Category_id)
	require.Len(t, merged[1].Items, 1)
	assert.Equal(t, "Brownie", merged[1].Items[0].Name)
}
