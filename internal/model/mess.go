package model

import "time"

// MessBalance is the per-student meal wallet. Balance is a decimal string
// so the API keeps the exact value the ledger produced.
type MessBalance struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"userId"`
	Balance         string    `json:"balance"`
	MealSwipes      int       `json:"mealSwipes"`
	TotalMealSwipes int       `json:"totalMealSwipes"`
	DiningPoints    int       `json:"diningPoints"`
	MealPlan        *string   `json:"mealPlan"`
	NextBillingDate *string   `json:"nextBillingDate"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// MessTransaction is one wallet movement. Amount is signed: positive for
// top-ups, negative for deductions.
type MessTransaction struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	CreatedAt   time.Time `json:"createdAt"`
}
