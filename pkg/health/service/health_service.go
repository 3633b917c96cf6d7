package service

import (
	"time"

	"lifedash/entities"
)

type MetricDraft struct {
	Date         time.Time
	Mood         int
	EnergyLevel  int
	SleepHours   float64
	SleepQuality *int // derived from SleepHours when absent
	Notes        string
}

// PerformanceSummary averages the last seven stored records.
type PerformanceSummary struct {
	AvgMood       float64 `json:"avg_mood"`
	AvgEnergy     float64 `json:"avg_energy"`
	AvgSleepHours float64 `json:"avg_sleep_hours"`
	Days          int     `json:"days"`
}

type HealthService interface {
	Upsert(d MetricDraft) (m *entities.HealthMetric, created bool, err error)
	Delete(id string)
	List() []entities.HealthMetric
	// CurrentMoodScore is the mood of the last record in storage order, 0
	// when no records exist.
	CurrentMoodScore() int
	Today(now time.Time) (*entities.HealthMetric, bool)
	Summary() PerformanceSummary
}
