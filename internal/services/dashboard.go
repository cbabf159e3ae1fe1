package services

import (
	"slices"
	"time"

	"interviewscheduler/internal/domain"
)

const upcomingLimit = 5

// BuildDashboard summarizes interviews as of now. Group breakdowns follow the
// enum declaration order and leave out groups with no interviews.
func BuildDashboard(interviews []*domain.Interview, now time.Time) *domain.Dashboard {
	d := &domain.Dashboard{
		Total:    len(interviews),
		ByStatus: make([]domain.StatusCount, 0),
		ByType:   make([]domain.TypeStats, 0),
		Upcoming: make([]domain.UpcomingInterview, 0),
	}

	statusCounts := make(map[domain.InterviewStatus]int)
	typeCounts := make(map[domain.InterviewType]int)
	typeMinutes := make(map[domain.InterviewType]int)
	var upcoming []*domain.Interview

	for _, iv := range interviews {
		statusCounts[iv.Status]++
		typeCounts[iv.Type]++
		typeMinutes[iv.Type] += iv.DurationMinutes
		if iv.Status == domain.InterviewStatusScheduled && iv.StartsAt.After(now) {
			upcoming = append(upcoming, iv)
		}
	}

	for _, s := range domain.InterviewStatuses() {
		if n := statusCounts[s]; n > 0 {
			d.ByStatus = append(d.ByStatus, domain.StatusCount{Status: s, Count: n})
		}
	}
	for _, t := range domain.InterviewTypes() {
		if n := typeCounts[t]; n > 0 {
			d.ByType = append(d.ByType, domain.TypeStats{
				Type:                   t,
				Count:                  n,
				AverageDurationMinutes: float64(typeMinutes[t]) / float64(n),
			})
		}
	}

	slices.SortStableFunc(upcoming, func(a, b *domain.Interview) int {
		return a.StartsAt.Compare(b.StartsAt)
	})
	for _, iv := range upcoming[:min(len(upcoming), upcomingLimit)] {
		d.Upcoming = append(d.Upcoming, domain.UpcomingInterview{
			ID:              iv.ID,
			StartsAt:        iv.StartsAt,
			Type:            iv.Type,
			DurationMinutes: iv.DurationMinutes,
		})
	}
	return d
}
