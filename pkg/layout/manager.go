// Package layout places the dashboard panels into two ordered columns and
// keeps the arrangement across restarts. Panel ids form a closed set; the
// persisted form may have drifted, so every load runs a reconcile pass.
package layout

import (
	"sync"

	"go.uber.org/zap"

	"lifedash/entities"
	"lifedash/pkg/storage"
)

const (
	PanelGoals    = "goals"
	PanelHealth   = "health"
	PanelJournals = "journals"
	PanelQuick    = "quick"

	ColumnLeft  = "left"
	ColumnRight = "right"
)

var knownPanels = map[string]bool{
	PanelGoals:    true,
	PanelHealth:   true,
	PanelJournals: true,
	PanelQuick:    true,
}

func DefaultLayout() entities.PanelLayout {
	return entities.PanelLayout{
		Left:  []string{PanelGoals},
		Right: []string{PanelHealth, PanelJournals, PanelQuick},
	}
}

// Reconcile repairs a persisted layout: unknown ids are dropped, duplicates
// within a column keep the first occurrence, and an id present in both
// columns is kept in left only. Ids missing from both columns are not
// auto-inserted; orphaned panels simply do not render.
func Reconcile(pl entities.PanelLayout) entities.PanelLayout {
	seen := map[string]bool{}
	clean := func(col []string) []string {
		out := make([]string, 0, len(col))
		for _, id := range col {
			if !knownPanels[id] || seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
		return out
	}
	left := clean(pl.Left)
	right := clean(pl.Right)
	return entities.PanelLayout{Left: left, Right: right}
}

type Manager struct {
	mu    sync.Mutex
	store storage.Store
	log   *zap.SugaredLogger
	left  []string
	right []string
}

func NewManager(store storage.Store, log *zap.SugaredLogger) *Manager {
	m := &Manager{store: store, log: log}
	var pl entities.PanelLayout
	if storage.LoadJSON(store, storage.KeyLayout, &pl) {
		pl = Reconcile(pl)
	} else {
		pl = DefaultLayout()
	}
	m.left, m.right = pl.Left, pl.Right
	return m
}

func (m *Manager) Layout() entities.PanelLayout {
	m.mu.Lock()
	defer m.mu.Unlock()
	return entities.PanelLayout{
		Left:  append([]string(nil), m.left...),
		Right: append([]string(nil), m.right...),
	}
}

func (m *Manager) persist() {
	pl := entities.PanelLayout{Left: m.left, Right: m.right}
	if err := storage.SaveJSON(m.store, storage.KeyLayout, pl); err != nil {
		m.log.Errorw("persist layout", "err", err)
	}
}

func remove(col []string, id string) []string {
	out := make([]string, 0, len(col))
	for _, v := range col {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MovePanel removes id from its current column and inserts it immediately
// before toBefore in the target column; when toBefore is not present the
// panel is appended (which is index 0 for an emptied list). A payload naming
// an unknown panel or column is a malformed drop and is ignored. A move that
// would not change the layout skips serialization.
func (m *Manager) MovePanel(id, toBefore, toColumn string) {
	if !knownPanels[id] || (toColumn != ColumnLeft && toColumn != ColumnRight) {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	left := remove(m.left, id)
	right := remove(m.right, id)
	target := &left
	if toColumn == ColumnRight {
		target = &right
	}
	at := len(*target)
	for i, v := range *target {
		if v == toBefore {
			at = i
			break
		}
	}
	col := append([]string(nil), (*target)[:at]...)
	col = append(col, id)
	col = append(col, (*target)[at:]...)
	*target = col

	if equal(left, m.left) && equal(right, m.right) {
		return
	}
	m.left, m.right = left, right
	m.persist()
}

// MovePanelToColumnEnd removes id from its current column and appends it to
// the end of the target column.
func (m *Manager) MovePanelToColumnEnd(id, toColumn string) {
	if !knownPanels[id] || (toColumn != ColumnLeft && toColumn != ColumnRight) {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	left := remove(m.left, id)
	right := remove(m.right, id)
	if toColumn == ColumnLeft {
		left = append(left, id)
	} else {
		right = append(right, id)
	}
	if equal(left, m.left) && equal(right, m.right) {
		return
	}
	m.left, m.right = left, right
	m.persist()
}

func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	pl := DefaultLayout()
	m.left, m.right = pl.Left, pl.Right
	m.persist()
}
