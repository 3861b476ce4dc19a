// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"fmt"
	"strings"
	"time"
)

// Recipe is a cooking recipe owned by exactly one account.
type Recipe struct {
	ID          int64     // Store-assigned identifier. Never reused.
	Owner       string    // Email of the account that created the recipe. Fixed at creation.
	Name        string    // Display name.
	Category    string    // Free-form category, matched case-insensitively by search.
	Date        time.Time // Set on creation and refreshed on every update.
	Description string    // Free-form description.
	Ingredients []string  // Ordered list, at least one non-blank entry.
	Directions  []string  // Ordered list, at least one non-blank entry.
}

// RecipeContent is the client-editable part of a recipe.
type RecipeContent struct {
	Name        string
	Category    string
	Description string
	Ingredients []string
	Directions  []string
}

// RecipeValidationError names the first field of a RecipeContent that failed validation.
type RecipeValidationError struct {
	Field  string
	Reason string
}

func (e *RecipeValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Validate checks the content rules shared by creation and update.
// It has no side effects and returns a *RecipeValidationError on failure.
func (c RecipeContent) Validate() error {
	blankChecks := []struct {
		field string
		value string
	}{
		{"name", c.Name},
		{"category", c.Category},
		{"description", c.Description},
	}
	for _, check := range blankChecks {
		if isBlank(check.value) {
			return &RecipeValidationError{Field: check.field, Reason: "must not be blank"}
		}
	}

	if err := validateSteps("ingredients", c.Ingredients); err != nil {
		return err
	}

	return validateSteps("directions", c.Directions)
}

// ApplyTo overwrites every editable field of the recipe and refreshes its date.
// ID and Owner are left untouched.
func (c RecipeContent) ApplyTo(recipe *Recipe, now time.Time) {
	recipe.Name = c.Name
	recipe.Category = c.Category
	recipe.Description = c.Description
	recipe.Ingredients = c.Ingredients
	recipe.Directions = c.Directions
	recipe.Date = now
}

func validateSteps(field string, steps []string) error {
	if len(steps) == 0 {
		return &RecipeValidationError{Field: field, Reason: "must contain at least one entry"}
	}
	for i, step := range steps {
		if isBlank(step) {
			return &RecipeValidationError{Field: fmt.Sprintf("%s[%d]", field, i), Reason: "must not be blank"}
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
