package service

import (
	"time"

	"lifedash/entities"
)

type GoalDraft struct {
	Title       string
	Description string
	Category    string
	StartDate   time.Time
	TargetDate  time.Time
	Progress    int
	Status      string
	Priority    string
}

type MilestoneDraft struct {
	Title       string
	Description string
	DueDate     time.Time
}

type GoalStats struct {
	ActiveGoals     int `json:"active_goals"`
	CompletedGoals  int `json:"completed_goals"`
	AverageProgress int `json:"average_progress"`
}

type GoalService interface {
	Add(d GoalDraft) (*entities.Goal, error)
	Update(id string, d GoalDraft) (*entities.Goal, error)
	ChangeStatus(id, status string) (*entities.Goal, error)
	Delete(id string)
	Get(id string) (*entities.Goal, error)
	// List filters by status: "all" (or empty), "active", "completed".
	List(filter string) []entities.Goal
	Stats() GoalStats
	// Visible is the dashboard panel view: active goals below 100% progress,
	// high priority first, at most five.
	Visible() []entities.Goal
	AddMilestone(goalID string, d MilestoneDraft) (*entities.Goal, error)
	ToggleMilestone(goalID, milestoneID string) (*entities.Goal, error)
}
