package serviceImp

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"lifedash/entities"
	repo "lifedash/pkg/goal/repository"
	"lifedash/pkg/goal/service"
)

var priorityRank = map[string]int{"high": 0, "medium": 1, "low": 2}

type goalSvc struct{ r repo.GoalRepository }

func NewGoalService(r repo.GoalRepository) service.GoalService { return &goalSvc{r} }

func validStatus(s string) bool {
	return s == "active" || s == "completed" || s == "paused"
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func (s *goalSvc) Add(d service.GoalDraft) (*entities.Goal, error) {
	if d.Title == "" {
		return nil, errors.New("title is required")
	}
	if d.TargetDate.IsZero() {
		return nil, errors.New("target date is required")
	}
	status := d.Status
	if status == "" {
		status = "active"
	}
	if !validStatus(status) {
		return nil, errors.New("invalid status")
	}
	priority := d.Priority
	if priority == "" {
		priority = "medium"
	}
	if _, ok := priorityRank[priority]; !ok {
		return nil, errors.New("invalid priority")
	}
	now := time.Now()
	g := &entities.Goal{
		ID:          uuid.New().String(),
		Title:       d.Title,
		Description: d.Description,
		Category:    d.Category,
		StartDate:   d.StartDate,
		TargetDate:  d.TargetDate, // not validated against StartDate
		Progress:    clampProgress(d.Progress),
		Status:      status,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.r.Insert(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *goalSvc) Update(id string, d service.GoalDraft) (*entities.Goal, error) {
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if d.Title == "" {
		return nil, errors.New("title is required")
	}
	if d.TargetDate.IsZero() {
		return nil, errors.New("target date is required")
	}
	cur.Title = d.Title
	cur.Description = d.Description
	cur.Category = d.Category
	cur.StartDate = d.StartDate
	cur.TargetDate = d.TargetDate
	cur.Progress = clampProgress(d.Progress)
	if d.Status != "" {
		if !validStatus(d.Status) {
			return nil, errors.New("invalid status")
		}
		cur.Status = d.Status
	}
	if d.Priority != "" {
		if _, ok := priorityRank[d.Priority]; !ok {
			return nil, errors.New("invalid priority")
		}
		cur.Priority = d.Priority
	}
	cur.UpdatedAt = time.Now()
	if err := s.r.Update(cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *goalSvc) ChangeStatus(id, status string) (*entities.Goal, error) {
	if !validStatus(status) {
		return nil, errors.New("invalid status")
	}
	cur, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	cur.Status = status
	cur.UpdatedAt = time.Now()
	if err := s.r.Update(cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *goalSvc) Delete(id string) { s.r.Delete(id) }

func (s *goalSvc) Get(id string) (*entities.Goal, error) { return s.r.FindByID(id) }

func (s *goalSvc) List(filter string) []entities.Goal {
	all := s.r.All()
	if filter == "" || filter == "all" {
		return all
	}
	out := make([]entities.Goal, 0, len(all))
	for _, g := range all {
		if g.Status == filter {
			out = append(out, g)
		}
	}
	return out
}

func (s *goalSvc) Stats() service.GoalStats {
	all := s.r.All()
	st := service.GoalStats{}
	sum := 0
	for _, g := range all {
		switch g.Status {
		case "active":
			st.ActiveGoals++
		case "completed":
			st.CompletedGoals++
		}
		sum += g.Progress
	}
	// Mean over every goal, whatever its status. Paused and completed goals
	// count in the denominator.
	if len(all) > 0 {
		st.AverageProgress = int(math.Round(float64(sum) / float64(len(all))))
	}
	return st
}

func (s *goalSvc) Visible() []entities.Goal {
	all := s.r.All()
	vis := make([]entities.Goal, 0, len(all))
	for _, g := range all {
		if g.Status == "active" && g.Progress < 100 {
			vis = append(vis, g)
		}
	}
	sort.SliceStable(vis, func(i, j int) bool {
		return priorityRank[vis[i].Priority] < priorityRank[vis[j].Priority]
	})
	if len(vis) > 5 {
		vis = vis[:5]
	}
	return vis
}

func (s *goalSvc) AddMilestone(goalID string, d service.MilestoneDraft) (*entities.Goal, error) {
	if d.Title == "" {
		return nil, errors.New("title is required")
	}
	cur, err := s.r.FindByID(goalID)
	if err != nil {
		return nil, err
	}
	cur.Milestones = append(cur.Milestones, entities.Milestone{
		ID:          uuid.New().String(),
		GoalID:      goalID,
		Title:       d.Title,
		Description: d.Description,
		DueDate:     d.DueDate,
	})
	cur.UpdatedAt = time.Now()
	if err := s.r.Update(cur); err != nil {
		return nil, err
	}
	return cur, nil
}

func (s *goalSvc) ToggleMilestone(goalID, milestoneID string) (*entities.Goal, error) {
	cur, err := s.r.FindByID(goalID)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range cur.Milestones {
		if cur.Milestones[i].ID == milestoneID {
			found = true
			if cur.Milestones[i].Completed {
				cur.Milestones[i].Completed = false
				cur.Milestones[i].CompletedDate = nil
			} else {
				now := time.Now()
				cur.Milestones[i].Completed = true
				cur.Milestones[i].CompletedDate = &now
			}
			break
		}
	}
	if !found {
		return nil, errors.New("milestone not found")
	}
	cur.UpdatedAt = time.Now()
	if err := s.r.Update(cur); err != nil {
		return nil, err
	}
	return cur, nil
}
