package domain

import "time"

// StatusCount is the number of interviews in one status.
type StatusCount struct {
	Status InterviewStatus `json:"status"`
	Count  int             `json:"count"`
}

// TypeStats is the number of interviews of one type and their mean duration.
type TypeStats struct {
	Type                   InterviewType `json:"type"`
	Count                  int           `json:"count"`
	AverageDurationMinutes float64       `json:"average_duration_minutes"`
}

// UpcomingInterview is the dashboard projection of a future scheduled interview.
type UpcomingInterview struct {
	ID              string        `json:"id"`
	StartsAt        time.Time     `json:"starts_at"`
	Type            InterviewType `json:"type"`
	DurationMinutes int           `json:"duration_minutes"`
}

// Dashboard is a snapshot computed from the current interview collection.
// swagger:model Dashboard
type Dashboard struct {
	Total    int                 `json:"total"`
	ByStatus []StatusCount       `json:"by_status"`
	ByType   []TypeStats         `json:"by_type"`
	Upcoming []UpcomingInterview `json:"upcoming"`
}
