package entities

import "time"

// HealthMetric is one calendar-day wellness record. Date is significant at
// day granularity only; at most one record exists per day.
type HealthMetric struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Mood         int       `json:"mood"`          // 1-5
	EnergyLevel  int       `json:"energy_level"`  // 1-5
	SleepHours   float64   `json:"sleep_hours"`   // 0-12 expected
	SleepQuality int       `json:"sleep_quality"` // 1-5
	Notes        string    `json:"notes"`

	CreatedAt time.Time
}
