package entities

import "time"

type MealRecord struct {
	ID          string     `json:"id"`
	Date        time.Time  `json:"date"`
	MealType    string     `json:"meal_type"` // breakfast|lunch|dinner|snack
	Description string     `json:"description"`
	Nutrition   *Nutrition `json:"nutrition,omitempty"`

	CreatedAt time.Time
}

type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}
