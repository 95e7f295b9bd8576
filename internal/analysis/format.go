package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/user/moodlog/pkg/models"
)

// fatigueLabels maps ratings 1..5 to the labels embedded in prompts.
var fatigueLabels = [...]string{"Very Bad", "Bad", "Okay", "Good", "Very Good"}

// FatigueLabel returns the human-readable label for a fatigue rating,
// falling back to the raw number for values outside 1..5.
func FatigueLabel(fatigue int) string {
	if fatigue >= 1 && fatigue <= len(fatigueLabels) {
		return fatigueLabels[fatigue-1]
	}
	return strconv.Itoa(fatigue)
}

// FormatRecords renders records one per line for prompt embedding:
// " <date>: Condition <label> (<notes or No notes>)".
func FormatRecords(recs []models.Record) string {
	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		notes := "No notes"
		if r.Notes != nil && *r.Notes != "" {
			notes = *r.Notes
		}
		lines = append(lines, fmt.Sprintf(" %s: Condition %s (%s)", r.Date, FatigueLabel(r.Fatigue), notes))
	}
	return strings.Join(lines, "\n")
}
