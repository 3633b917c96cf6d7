package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lifedash/entities"
	"lifedash/pkg/storage"
)

func newManager(t *testing.T) (*Manager, storage.Store) {
	t.Helper()
	store := storage.NewMemory()
	return NewManager(store, zap.NewNop().Sugar()), store
}

func TestFreshStoreGetsDefaultLayout(t *testing.T) {
	m, _ := newManager(t)

	pl := m.Layout()
	assert.Equal(t, []string{PanelGoals}, pl.Left)
	assert.Equal(t, []string{PanelHealth, PanelJournals, PanelQuick}, pl.Right)
}

func TestMovePanelBeforeTarget(t *testing.T) {
	m, _ := newManager(t)

	// Drag health from the right column onto goals in the left column.
	m.MovePanel(PanelHealth, PanelGoals, ColumnLeft)

	pl := m.Layout()
	assert.Equal(t, []string{PanelHealth, PanelGoals}, pl.Left)
	assert.Equal(t, []string{PanelJournals, PanelQuick}, pl.Right)
}

func TestMovePanelMissingTargetAppends(t *testing.T) {
	m, _ := newManager(t)

	// quick is in the right column, so the left insert appends.
	m.MovePanel(PanelJournals, PanelQuick, ColumnLeft)

	pl := m.Layout()
	assert.Equal(t, []string{PanelGoals, PanelJournals}, pl.Left)
	assert.Equal(t, []string{PanelHealth, PanelQuick}, pl.Right)
}

func TestMalformedDropIsIgnored(t *testing.T) {
	m, _ := newManager(t)
	before := m.Layout()

	m.MovePanel("nope", PanelGoals, ColumnLeft)
	m.MovePanel(PanelHealth, PanelGoals, "middle")
	m.MovePanelToColumnEnd("nope", ColumnRight)

	assert.Equal(t, before, m.Layout())
}

func TestNoOpMoveSkipsSerialization(t *testing.T) {
	m, store := newManager(t)

	// Fresh managers never persist until a real change happens.
	m.MovePanelToColumnEnd(PanelQuick, ColumnRight) // already last on the right
	_, found, err := store.Get(storage.KeyLayout)
	require.NoError(t, err)
	assert.False(t, found)

	m.MovePanelToColumnEnd(PanelQuick, ColumnLeft)
	_, found, err = store.Get(storage.KeyLayout)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestLayoutSurvivesRestart(t *testing.T) {
	m, store := newManager(t)
	m.MovePanel(PanelHealth, PanelGoals, ColumnLeft)
	want := m.Layout()

	m2 := NewManager(store, zap.NewNop().Sugar())
	assert.Equal(t, want, m2.Layout())
}

func TestReconcileDropsUnknownAndDuplicates(t *testing.T) {
	got := Reconcile(entities.PanelLayout{
		Left:  []string{PanelJournals, "legacy-widget", PanelJournals},
		Right: []string{PanelJournals, PanelHealth},
	})
	// Duplicates keep the first occurrence; the left column wins across
	// columns; unknown ids vanish; goals is not auto-inserted.
	assert.Equal(t, []string{PanelJournals}, got.Left)
	assert.Equal(t, []string{PanelHealth}, got.Right)
}

func TestCorruptedPersistedLayoutFallsBackToDefault(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.Set(storage.KeyLayout, []byte("][")))

	m := NewManager(store, zap.NewNop().Sugar())
	assert.Equal(t, DefaultLayout(), m.Layout())
}

func TestDriftedPersistedLayoutIsRepairedOnLoad(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, storage.SaveJSON(store, storage.KeyLayout, entities.PanelLayout{
		Left:  []string{PanelJournals, "gone"},
		Right: []string{PanelJournals, PanelGoals},
	}))

	m := NewManager(store, zap.NewNop().Sugar())
	pl := m.Layout()
	assert.Equal(t, []string{PanelJournals}, pl.Left)
	assert.Equal(t, []string{PanelGoals}, pl.Right)
}

func TestReset(t *testing.T) {
	m, store := newManager(t)
	m.MovePanel(PanelGoals, "", ColumnRight)
	m.Reset()

	assert.Equal(t, DefaultLayout(), m.Layout())

	m2 := NewManager(store, zap.NewNop().Sugar())
	assert.Equal(t, DefaultLayout(), m2.Layout())
}

func TestLayoutReturnsCopies(t *testing.T) {
	m, _ := newManager(t)

	pl := m.Layout()
	pl.Right[0] = "mutated"
	assert.Equal(t, PanelHealth, m.Layout().Right[0])
}
