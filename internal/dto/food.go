package dto

import "time"

// CreateFoodEntryRequest is the payload for POST /food/
type CreateFoodEntryRequest struct {
	FoodText string     `json:"food_text" example:"apple"`
	MealType string     `json:"meal_type,omitempty" example:"snack"`
	LoggedAt *time.Time `json:"logged_at,omitempty" example:"2026-10-19T08:30:00Z"`
}

// FoodEntryResponse represents a food entry in responses
type FoodEntryResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	FoodText  string `json:"food_text"`
	MealType  string `json:"meal_type"`
	LoggedAt  string `json:"logged_at"`
	CreatedAt string `json:"created_at"`
}
