package serviceImp

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"lifedash/entities"
	"lifedash/pkg/events"
	repo "lifedash/pkg/journal/repository"
	"lifedash/pkg/journal/service"
)

const defaultPageSize = 6

type journalSvc struct {
	r   repo.JournalRepository
	bus *events.Bus
}

func NewJournalService(r repo.JournalRepository, bus *events.Bus) service.JournalService {
	return &journalSvc{r: r, bus: bus}
}

func (s *journalSvc) Add(d service.JournalDraft) (*entities.Journal, error) {
	if strings.TrimSpace(d.Title) == "" {
		return nil, errors.New("title is required")
	}
	if strings.TrimSpace(d.Content) == "" {
		return nil, errors.New("content is required")
	}
	date := d.Date
	if date.IsZero() {
		date = time.Now()
	}
	j := &entities.Journal{
		ID:      uuid.New().String(),
		Date:    date,
		Title:   d.Title,
		Content: d.Content,
		Mood:    d.Mood,
		Tags:    append([]string(nil), d.Tags...),
		GoalIDs: append([]string(nil), d.GoalIDs...),
	}
	if err := s.r.Insert(j); err != nil {
		return nil, err
	}
	s.bus.Publish(events.TopicJournalsChanged)
	return j, nil
}

func (s *journalSvc) Update(id string, d service.JournalDraft) (*entities.Journal, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(d.Title) == "" {
		return nil, errors.New("title is required")
	}
	if strings.TrimSpace(d.Content) == "" {
		return nil, errors.New("content is required")
	}
	cur.Title = d.Title
	cur.Content = d.Content
	if !d.Date.IsZero() {
		cur.Date = d.Date
	}
	if d.Mood != 0 {
		cur.Mood = d.Mood
	}
	cur.Tags = append([]string(nil), d.Tags...)
	cur.GoalIDs = append([]string(nil), d.GoalIDs...)
	if err := s.r.Update(cur); err != nil {
		return nil, err
	}
	s.bus.Publish(events.TopicJournalsChanged)
	return cur, nil
}

func (s *journalSvc) Delete(id string) {
	if s.r.Delete(id) {
		s.bus.Publish(events.TopicJournalsChanged)
	}
}

func (s *journalSvc) Get(id string) (*entities.Journal, error) { return s.r.FindByID(id) }

func (s *journalSvc) Subscribe(fn func()) func() {
	return s.bus.Subscribe(events.TopicJournalsChanged, fn)
}

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

func matchesTags(j entities.Journal, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, want := range tags {
		for _, have := range j.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

func matchesRange(j entities.Journal, from, to *time.Time) bool {
	day := dayKey(j.Date)
	if from != nil && day < dayKey(*from) {
		return false
	}
	if to != nil && day > dayKey(*to) {
		return false
	}
	return true
}

// matchesText searches title, content, the tag list and the localized date
// rendering, the way the archive search box does.
func matchesText(j entities.Journal, text string) bool {
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(j.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(j.Content), q) {
		return true
	}
	if strings.Contains(strings.ToLower(strings.Join(j.Tags, " ")), q) {
		return true
	}
	return strings.Contains(j.Date.Format("2006/1/2"), q)
}

func (s *journalSvc) Search(q service.Query) service.Page {
	all := s.r.All()
	filtered := make([]entities.Journal, 0, len(all))
	for _, j := range all {
		if matchesTags(j, q.Tags) && matchesRange(j, q.From, q.To) && matchesText(j, q.Text) {
			filtered = append(filtered, j)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	lo := (page - 1) * pageSize
	hi := lo + pageSize
	if lo > total {
		lo = total
	}
	if hi > total {
		hi = total
	}
	return service.Page{
		Items:      filtered[lo:hi],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

func (s *journalSvc) Recent(today time.Time) []entities.Journal {
	from := today.AddDate(0, 0, -2)
	out := make([]entities.Journal, 0, 3)
	for _, j := range s.r.All() {
		if matchesRange(j, &from, &today) {
			out = append(out, j)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}
