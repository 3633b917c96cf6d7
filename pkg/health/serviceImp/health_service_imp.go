package serviceImp

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"lifedash/entities"
	repo "lifedash/pkg/health/repository"
	"lifedash/pkg/health/service"
)

type healthSvc struct{ r repo.HealthRepository }

func NewHealthService(r repo.HealthRepository) service.HealthService { return &healthSvc{r} }

func clampScale(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}

// deriveSleepQuality estimates quality from hours slept against a 12-hour
// ceiling: round(clamp(hours/12*5, 1, 5)).
func deriveSleepQuality(hours float64) int {
	return clampScale(int(math.Round(hours / 12 * 5)))
}

func (s *healthSvc) Upsert(d service.MetricDraft) (*entities.HealthMetric, bool, error) {
	if d.Mood < 1 || d.Mood > 5 {
		return nil, false, errors.New("mood must be between 1 and 5")
	}
	if d.SleepHours < 0 {
		return nil, false, errors.New("sleep hours must not be negative")
	}
	date := d.Date
	if date.IsZero() {
		date = time.Now()
	}
	energy := d.EnergyLevel
	if energy == 0 {
		// the quick-entry form records energy as mood
		energy = d.Mood
	}
	quality := 0
	if d.SleepQuality != nil && *d.SleepQuality != 0 {
		quality = clampScale(*d.SleepQuality)
	} else {
		quality = deriveSleepQuality(d.SleepHours)
	}
	m := &entities.HealthMetric{
		ID:           uuid.New().String(),
		Date:         date,
		Mood:         d.Mood,
		EnergyLevel:  clampScale(energy),
		SleepHours:   d.SleepHours,
		SleepQuality: quality,
		Notes:        d.Notes,
		CreatedAt:    time.Now(),
	}
	stored, created := s.r.Upsert(m)
	return stored, created, nil
}

func (s *healthSvc) Delete(id string) { s.r.Delete(id) }

func (s *healthSvc) List() []entities.HealthMetric { return s.r.All() }

func (s *healthSvc) CurrentMoodScore() int {
	last, ok := s.r.Last()
	if !ok {
		return 0
	}
	return last.Mood
}

func (s *healthSvc) Today(now time.Time) (*entities.HealthMetric, bool) {
	return s.r.FindByDay(repo.DayKey(now))
}

func (s *healthSvc) Summary() service.PerformanceSummary {
	all := s.r.All()
	if len(all) > 7 {
		all = all[len(all)-7:]
	}
	sum := service.PerformanceSummary{Days: len(all)}
	if len(all) == 0 {
		return sum
	}
	var mood, energy, sleep float64
	for _, m := range all {
		mood += float64(m.Mood)
		energy += float64(m.EnergyLevel)
		sleep += m.SleepHours
	}
	n := float64(len(all))
	sum.AvgMood = mood / n
	sum.AvgEnergy = energy / n
	sum.AvgSleepHours = sleep / n
	return sum
}
