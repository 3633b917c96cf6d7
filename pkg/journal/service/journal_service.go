package service

import (
	"time"

	"lifedash/entities"
)

type JournalDraft struct {
	Date    time.Time
	Title   string
	Content string
	Mood    int
	Tags    []string
	GoalIDs []string
}

// Query combines the archive filters. All provided filters must hold;
// tag matching uses OR semantics within the tag set.
type Query struct {
	Tags     []string
	From, To *time.Time // inclusive calendar-day bounds
	Text     string     // case-insensitive substring
	Page     int
	PageSize int
}

type Page struct {
	Items      []entities.Journal `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

type JournalService interface {
	Add(d JournalDraft) (*entities.Journal, error)
	Update(id string, d JournalDraft) (*entities.Journal, error)
	Delete(id string)
	Get(id string) (*entities.Journal, error)
	Search(q Query) Page
	// Recent is the dashboard panel: entries dated within the inclusive
	// range [today-2d, today], newest first, at most three.
	Recent(today time.Time) []entities.Journal
	// Subscribe registers an invalidation listener fired after any mutation.
	Subscribe(fn func()) func()
}
