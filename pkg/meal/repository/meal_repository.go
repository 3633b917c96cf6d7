package repository

import "lifedash/entities"

type MealRepository interface {
	Insert(m *entities.MealRecord) error
	Delete(id string)
	// All returns records sorted by date descending.
	All() []entities.MealRecord
}
