package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repoImp "lifedash/pkg/health/repositoryImp"
	"lifedash/pkg/health/service"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUpsertSameDayKeepsFirstID(t *testing.T) {
	svc := NewHealthService(repoImp.New())

	first, created, err := svc.Upsert(service.MetricDraft{
		Date: day(2024, 12, 3), Mood: 3, SleepHours: 6,
	})
	require.NoError(t, err)
	assert.True(t, created)

	// Same calendar day, different time of day.
	second, created, err := svc.Upsert(service.MetricDraft{
		Date: time.Date(2024, 12, 3, 22, 15, 0, 0, time.UTC), Mood: 5, SleepHours: 8, Notes: "late entry",
	})
	require.NoError(t, err)
	assert.False(t, created)

	all := svc.List()
	require.Len(t, all, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, all[0].Mood)
	assert.Equal(t, "late entry", all[0].Notes)
}

func TestUpsertDistinctDays(t *testing.T) {
	svc := NewHealthService(repoImp.New())

	_, _, err := svc.Upsert(service.MetricDraft{Date: day(2024, 12, 1), Mood: 4, SleepHours: 7})
	require.NoError(t, err)
	_, _, err = svc.Upsert(service.MetricDraft{Date: day(2024, 12, 2), Mood: 2, SleepHours: 5})
	require.NoError(t, err)

	assert.Len(t, svc.List(), 2)
}

func TestUpsertValidatesMood(t *testing.T) {
	svc := NewHealthService(repoImp.New())

	_, _, err := svc.Upsert(service.MetricDraft{Date: day(2024, 12, 1), Mood: 0, SleepHours: 7})
	require.Error(t, err)
	_, _, err = svc.Upsert(service.MetricDraft{Date: day(2024, 12, 1), Mood: 6, SleepHours: 7})
	require.Error(t, err)
}

func TestSleepQualityDerivation(t *testing.T) {
	cases := []struct {
		hours float64
		want  int
	}{
		{0, 1},    // clamped up to 1
		{2, 1},    // 0.83 rounds to 1
		{6, 3},    // 2.5 rounds to 3 (half away from zero)
		{7.5, 3},  // 3.125 rounds to 3
		{12, 5},   // full scale
		{20, 5},   // clamped down to 5
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, deriveSleepQuality(tc.hours), "hours=%v", tc.hours)
	}
}

func TestUpsertKeepsExplicitSleepQuality(t *testing.T) {
	svc := NewHealthService(repoImp.New())

	q := 2
	m, _, err := svc.Upsert(service.MetricDraft{Date: day(2024, 12, 1), Mood: 4, SleepHours: 12, SleepQuality: &q})
	require.NoError(t, err)
	assert.Equal(t, 2, m.SleepQuality)
}

func TestEnergyDefaultsToMood(t *testing.T) {
	svc := NewHealthService(repoImp.New())

	m, _, err := svc.Upsert(service.MetricDraft{Date: day(2024, 12, 1), Mood: 4, SleepHours: 7})
	require.NoError(t, err)
	assert.Equal(t, 4, m.EnergyLevel)
}

func TestCurrentMoodScoreReadsLastStored(t *testing.T) {
	svc := NewHealthService(repoImp.New())
	assert.Equal(t, 0, svc.CurrentMoodScore())

	// Later calendar date stored first.
	_, _, err := svc.Upsert(service.MetricDraft{Date: day(2024, 12, 9), Mood: 5, SleepHours: 8})
	require.NoError(t, err)
	_, _, err = svc.Upsert(service.MetricDraft{Date: day(2024, 12, 1), Mood: 2, SleepHours: 6})
	require.NoError(t, err)

	// Storage order wins over calendar order.
	assert.Equal(t, 2, svc.CurrentMoodScore())
}

func TestSummaryAveragesLastSeven(t *testing.T) {
	svc := NewHealthService(repoImp.New())

	for i := 0; i < 9; i++ {
		mood := 1
		if i >= 2 {
			mood = 3 // the seven that count
		}
		_, _, err := svc.Upsert(service.MetricDraft{Date: day(2024, 12, 1+i), Mood: mood, SleepHours: 7})
		require.NoError(t, err)
	}

	sum := svc.Summary()
	assert.Equal(t, 7, sum.Days)
	assert.InDelta(t, 3.0, sum.AvgMood, 0.001)
	assert.InDelta(t, 7.0, sum.AvgSleepHours, 0.001)
}

func TestDeleteFreesDay(t *testing.T) {
	svc := NewHealthService(repoImp.New())

	m, _, err := svc.Upsert(service.MetricDraft{Date: day(2024, 12, 1), Mood: 4, SleepHours: 7})
	require.NoError(t, err)

	svc.Delete(m.ID)
	assert.Empty(t, svc.List())

	// The day is reusable after deletion.
	m2, created, err := svc.Upsert(service.MetricDraft{Date: day(2024, 12, 1), Mood: 1, SleepHours: 4})
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, m.ID, m2.ID)
}

func TestToday(t *testing.T) {
	svc := NewHealthService(repoImp.New())

	now := time.Now()
	_, _, err := svc.Upsert(service.MetricDraft{Date: now, Mood: 4, SleepHours: 7})
	require.NoError(t, err)

	got, ok := svc.Today(now)
	require.True(t, ok)
	assert.Equal(t, 4, got.Mood)

	_, ok = svc.Today(now.AddDate(0, 0, 1))
	assert.False(t, ok)
}
