package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultMealType is used when a new entry does not name a meal
const DefaultMealType = "snack"

// FoodEntry represents one logged meal or food item owned by a single user
type FoodEntry struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	FoodText  string    `json:"food_text" db:"food_text"`
	MealType  string    `json:"meal_type" db:"meal_type"`
	LoggedAt  time.Time `json:"logged_at" db:"logged_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewFoodEntry holds the caller-supplied fields of an entry to create.
// Owner, id and created_at are always assigned by the server.
type NewFoodEntry struct {
	FoodText string
	MealType string
	LoggedAt *time.Time
}
