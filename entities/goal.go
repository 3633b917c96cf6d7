package entities

import "time"

type Goal struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	StartDate   time.Time   `json:"start_date"`
	TargetDate  time.Time   `json:"target_date"`
	Progress    int         `json:"progress"` // 0-100
	Status      string      `json:"status"`   // active|completed|paused
	Priority    string      `json:"priority"` // high|medium|low
	Milestones  []Milestone `json:"milestones,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Milestone struct {
	ID            string     `json:"id"`
	GoalID        string     `json:"goal_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	DueDate       time.Time  `json:"due_date"`
	Completed     bool       `json:"completed"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
}
