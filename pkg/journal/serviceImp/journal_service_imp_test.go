package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lifedash/pkg/events"
	repoImp "lifedash/pkg/journal/repositoryImp"
	"lifedash/pkg/journal/service"
	"lifedash/pkg/storage"
)

func newSvc(t *testing.T) (service.JournalService, storage.Store) {
	t.Helper()
	store := storage.NewMemory()
	repo := repoImp.New(store, zap.NewNop().Sugar())
	return NewJournalService(repo, events.NewBus()), store
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func add(t *testing.T, svc service.JournalService, title string, date time.Time, tags ...string) string {
	t.Helper()
	j, err := svc.Add(service.JournalDraft{Title: title, Content: "entry " + title, Date: date, Tags: tags})
	require.NoError(t, err)
	return j.ID
}

func TestAddRequiresTitleAndContent(t *testing.T) {
	svc, _ := newSvc(t)

	_, err := svc.Add(service.JournalDraft{Content: "body"})
	require.Error(t, err)
	_, err = svc.Add(service.JournalDraft{Title: "head"})
	require.Error(t, err)
	_, err = svc.Add(service.JournalDraft{Title: "  ", Content: "body"})
	require.Error(t, err)
}

func TestDateRangeIsInclusiveAtDayGranularity(t *testing.T) {
	svc, _ := newSvc(t)
	add(t, svc, "first", day(2024, 12, 1))
	add(t, svc, "middle", day(2024, 12, 3))
	add(t, svc, "last", day(2024, 12, 5))

	from := day(2024, 12, 2)
	to := day(2024, 12, 4)
	page := svc.Search(service.Query{From: &from, To: &to})
	require.Len(t, page.Items, 1)
	assert.Equal(t, "middle", page.Items[0].Title)

	// Bounds themselves match.
	from, to = day(2024, 12, 1), day(2024, 12, 5)
	page = svc.Search(service.Query{From: &from, To: &to})
	assert.Len(t, page.Items, 3)
}

func TestTagFilterUsesORSemantics(t *testing.T) {
	svc, _ := newSvc(t)
	add(t, svc, "work", day(2024, 12, 1), "work")
	add(t, svc, "fitness", day(2024, 12, 2), "fitness", "running")
	add(t, svc, "untagged", day(2024, 12, 3))

	page := svc.Search(service.Query{Tags: []string{"work", "running"}})
	require.Len(t, page.Items, 2)
	// Sorted by date descending.
	assert.Equal(t, "fitness", page.Items[0].Title)
	assert.Equal(t, "work", page.Items[1].Title)
}

func TestFreeTextSearchesTitleContentTagsAndDate(t *testing.T) {
	svc, _ := newSvc(t)
	add(t, svc, "Morning Run", day(2024, 12, 3), "Fitness")
	add(t, svc, "standup", day(2024, 11, 20), "work")

	assert.Len(t, svc.Search(service.Query{Text: "morning"}).Items, 1)   // title
	assert.Len(t, svc.Search(service.Query{Text: "entry"}).Items, 2)     // content
	assert.Len(t, svc.Search(service.Query{Text: "fitness"}).Items, 1)   // tag, case-insensitive
	assert.Len(t, svc.Search(service.Query{Text: "2024/12/3"}).Items, 1) // rendered date
	assert.Empty(t, svc.Search(service.Query{Text: "absent"}).Items)
}

func TestPagination(t *testing.T) {
	svc, _ := newSvc(t)
	for i := 1; i <= 7; i++ {
		add(t, svc, "entry", day(2024, 12, i))
	}

	page := svc.Search(service.Query{Page: 1, PageSize: 3})
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 7, page.Total)
	assert.Equal(t, 3, page.TotalPages)

	last := svc.Search(service.Query{Page: 3, PageSize: 3})
	assert.Len(t, last.Items, 1)

	// Out-of-range page clamps instead of erroring.
	clamped := svc.Search(service.Query{Page: 99, PageSize: 3})
	assert.Equal(t, 3, clamped.Page)
	assert.Len(t, clamped.Items, 1)
}

func TestRecentWindow(t *testing.T) {
	svc, _ := newSvc(t)
	today := day(2024, 12, 10)
	add(t, svc, "old", day(2024, 12, 7)) // outside the two-day window
	add(t, svc, "edge", day(2024, 12, 8))
	add(t, svc, "mid", day(2024, 12, 9))
	add(t, svc, "now", today)

	recent := svc.Recent(today)
	require.Len(t, recent, 3)
	assert.Equal(t, "now", recent[0].Title)
	assert.Equal(t, "edge", recent[2].Title)
}

func TestMutationsPersistAndNotify(t *testing.T) {
	svc, store := newSvc(t)

	notified := 0
	unsub := svc.Subscribe(func() { notified++ })
	defer unsub()

	id := add(t, svc, "persisted", day(2024, 12, 1))
	assert.Equal(t, 1, notified)

	// A fresh repo over the same store sees the write.
	repo2 := repoImp.New(store, zap.NewNop().Sugar())
	svc2 := NewJournalService(repo2, events.NewBus())
	got, err := svc2.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Title)

	_, err = svc.Update(id, service.JournalDraft{Title: "edited", Content: "body"})
	require.NoError(t, err)
	assert.Equal(t, 2, notified)

	svc.Delete(id)
	assert.Equal(t, 3, notified)

	// Deleting again changes nothing and fires no signal.
	svc.Delete(id)
	assert.Equal(t, 3, notified)
}

func TestCorruptedBlobLoadsAsEmpty(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(storage.KeyJournals, []byte("{not json")))

	repo := repoImp.New(store, zap.NewNop().Sugar())
	svc := NewJournalService(repo, events.NewBus())
	assert.Empty(t, svc.Search(service.Query{}).Items)
}

func TestDanglingGoalReferencesAreKept(t *testing.T) {
	svc, _ := newSvc(t)

	j, err := svc.Add(service.JournalDraft{
		Title: "linked", Content: "body", Date: day(2024, 12, 1),
		GoalIDs: []string{"deleted-goal-id"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"deleted-goal-id"}, j.GoalIDs)
}
