package entities

import "time"

type Journal struct {
	ID      string    `json:"id"`
	Date    time.Time `json:"date"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Mood    int       `json:"mood,omitempty"` // 1-5
	Tags    []string  `json:"tags"`
	// Referenced goals may have been deleted; dangling ids are tolerated.
	GoalIDs []string `json:"goal_ids,omitempty"`
}
