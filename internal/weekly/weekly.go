// Package weekly decides whether a user has recorded every day of the
// current ISO week and gates the one-time analysis proposal per week.
package weekly

import (
	"context"
	"fmt"
	"time"

	"github.com/user/moodlog/internal/period"
	"github.com/user/moodlog/pkg/models"
	"github.com/user/moodlog/pkg/repository"
)

// Checker computes weekly completion status from the record store.
type Checker struct {
	records repository.RecordRepo
	gate    *Gate
}

func NewChecker(records repository.RecordRepo, gate *Gate) *Checker {
	if gate == nil {
		gate = NewGate()
	}
	return &Checker{records: records, gate: gate}
}

// Check computes the weekly status for userID as of now. The week runs
// Monday through Sunday. A fetch failure is returned as an error so callers
// cannot mistake it for a legitimately incomplete week.
func (c *Checker) Check(ctx context.Context, userID string, now time.Time) (models.WeeklyStatus, error) {
	start, end := period.WeekBounds(now)
	from := start.Format(period.DateLayout)
	to := end.Format(period.DateLayout)

	status := models.WeeklyStatus{
		WeekRange: models.WeekRange{From: from, To: to},
		TotalDays: 7,
	}

	recs, err := c.records.ListByUserAndDateRange(ctx, userID, from, to)
	if err != nil {
		return status, fmt.Errorf("fetch week records: %w", err)
	}

	recorded := make(map[string]bool, len(recs))
	for _, r := range recs {
		recorded[r.Date] = true
	}
	for _, d := range period.WeekDates(now) {
		if recorded[d] {
			status.RecordedDays++
		}
	}
	status.IsComplete = status.RecordedDays == status.TotalDays

	return status, nil
}

// Evaluate runs Check and consults the proposal gate. propose is true at
// most once per user per ISO week within this process, and only when the
// week is complete. The check-and-set is atomic, so two concurrent
// evaluations of the same week cannot both propose.
func (c *Checker) Evaluate(ctx context.Context, userID string, now time.Time) (status models.WeeklyStatus, propose bool, err error) {
	status, err = c.Check(ctx, userID, now)
	if err != nil {
		return status, false, err
	}
	if !status.IsComplete {
		return status, false, nil
	}
	return status, c.gate.TryPropose(proposalKey(userID, now)), nil
}

func proposalKey(userID string, now time.Time) string {
	return userID + "/" + period.WeekKey(now)
}
