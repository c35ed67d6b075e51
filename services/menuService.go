package services

import (
	"fmt"
	"strings"

	"github.com/CyberDemon2001/Bill-Generator/models"
	"github.com/google/uuid"
)

// ValidateCategories checks an incoming category payload before anything is
// written: every category needs a name and at least one item, every item
// needs a name and at least one well-formed price tier.
func ValidateCategories(categories []models.MenuCategory) error {
	if len(categories) == 0 {
		return &ValidationError{Message: "At least one category is required"}
	}

	for _, category := range categories {
		if strings.TrimSpace(category.Name) == "" {
			return &ValidationError{Message: "Each category must have a name"}
		}
		if len(category.Items) == 0 {
			return &ValidationError{Message: fmt.Sprintf("Category '%s' must have at least one item", category.Name)}
		}

		for _, item := range category.Items {
			if strings.TrimSpace(item.Name) == "" {
				return &ValidationError{Message: fmt.Sprintf("Item in category '%s' must have a name", category.Name)}
			}
			if len(item.Price) == 0 {
				return &ValidationError{Message: fmt.Sprintf("Item '%s' in category '%s' must have price variations", item.Name, category.Name)}
			}
			for _, p := range item.Price {
				if strings.TrimSpace(p.Size) == "" || p.Amount < 0 {
					return &ValidationError{Message: fmt.Sprintf("Item '%s' in category '%s' has invalid price format", item.Name, category.Name)}
				}
			}
		}
	}
	return nil
}

// AssignIDs gives every category and item without an id a fresh UUID. Ids are
// assigned once at creation and never regenerated, so clients can hold on to
// them across menu merges.
func AssignIDs(categories []models.MenuCategory) {
	for i := range categories {
		if categories[i].Category_id == "" {
			categories[i].Category_id = uuid.NewString()
		}
		for j := range categories[i].Items {
			item := &categories[i].Items[j]
			if item.Item_id == "" {
				item.Item_id = uuid.NewString()
				item.Available = true
			}
		}
	}
}

// MergeCategories folds incoming categories into the existing list. A
// category whose name matches an existing one (case-insensitive) gets the new
// items appended to it; everything else is appended as a new category.
// Resubmitting the same payload appends the same items again — the merge is
// deliberately additive, not idempotent.
func MergeCategories(existing, incoming []models.MenuCategory) []models.MenuCategory {
	AssignIDs(incoming)

	merged := existing
	for _, newCategory := range incoming {
		matched := false
		for i := range merged {
			if strings.EqualFold(merged[i].Name, newCategory.Name) {
				merged[i].Items = append(merged[i].Items, newCategory.Items...)
				matched = true
				break
			}
		}
		if !matched {
			merged = append(merged, newCategory)
		}
	}
	return merged
}
