package repository

import (
	"time"

	"lifedash/entities"
)

// DayKey canonicalizes a timestamp to calendar-day granularity.
func DayKey(t time.Time) string { return t.Format("2006-01-02") }

type HealthRepository interface {
	// Upsert inserts m, or replaces the fields of the existing record for
	// m's calendar day while keeping that record's id and position. The
	// one-record-per-day rule holds for every caller, not just one code path.
	Upsert(m *entities.HealthMetric) (stored *entities.HealthMetric, created bool)
	// Delete is idempotent.
	Delete(id string)
	// All returns records in storage (insertion) order.
	All() []entities.HealthMetric
	// Last returns the most recently stored record, which is not necessarily
	// the most recently dated one.
	Last() (*entities.HealthMetric, bool)
	FindByDay(day string) (*entities.HealthMetric, bool)
}
