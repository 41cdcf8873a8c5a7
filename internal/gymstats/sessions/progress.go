package sessions

import (
	"math"
	"sort"
	"time"

	"github.com/2beens/liftlog/internal/gymstats/equipment"
)

// EstimatedOneRepMax uses the Epley formula: round(weight × (1 + reps/30)).
// Zero reps yield the weight itself.
func EstimatedOneRepMax(weight float64, reps int) int {
	if reps <= 0 {
		return int(math.Round(weight))
	}
	return int(math.Round(weight * (1 + float64(reps)/30)))
}

// ProgressEntry is one historic set of an exercise, as stored.
type ProgressEntry struct {
	SetID      int
	SessionID  int
	SetNumber  int
	SeriesType SeriesType
	Weight     int
	Reps       int
	Date       time.Time
	Equipment  equipment.Config
	// SessionEnded is false for sets of a session still in progress.
	SessionEnded bool
}

// OnlyEnded drops entries of sessions still in progress.
func OnlyEnded(history []ProgressEntry) []ProgressEntry {
	ended := make([]ProgressEntry, 0, len(history))
	for _, entry := range history {
		if entry.SessionEnded {
			ended = append(ended, entry)
		}
	}
	return ended
}

// HistoryVolume sums round(actual weight × reps) over the working and
// back-off entries, the same way a session total is computed.
func HistoryVolume(history []ProgressEntry) int {
	total := 0
	for _, entry := range history {
		if !entry.SeriesType.CountsTowardVolume() {
			continue
		}
		actual, err := equipment.ActualWeight(float64(entry.Weight), entry.Equipment)
		if err != nil {
			actual = float64(entry.Weight)
		}
		total += int(math.Round(actual * float64(entry.Reps)))
	}
	return total
}

// DistinctSessions counts the sessions the records come from.
func DistinctSessions(records []ProgressRecord) int {
	seen := make(map[int]struct{}, len(records))
	for _, r := range records {
		seen[r.SessionID] = struct{}{}
	}
	return len(seen)
}

type ProgressRecord struct {
	SessionID          int        `json:"sessionId"`
	SetNumber          int        `json:"setNumber"`
	SeriesType         SeriesType `json:"seriesType"`
	Weight             int        `json:"weight"`
	ActualWeight       float64    `json:"actualWeight"`
	Reps               int        `json:"reps"`
	Date               time.Time  `json:"date"`
	EstimatedOneRepMax int        `json:"estimatedOneRepMax"`
}

// ExerciseProgress keeps working and back-off sets, most recent first,
// truncated to limit (limit <= 0 keeps everything).
func ExerciseProgress(history []ProgressEntry, limit int) []ProgressRecord {
	records := make([]ProgressRecord, 0, len(history))
	for _, entry := range history {
		if !entry.SeriesType.CountsTowardVolume() {
			continue
		}

		actual, err := equipment.ActualWeight(float64(entry.Weight), entry.Equipment)
		if err != nil {
			// equipment changed to something invalid after the fact, show the raw entry
			actual = float64(entry.Weight)
		}

		records = append(records, ProgressRecord{
			SessionID:          entry.SessionID,
			SetNumber:          entry.SetNumber,
			SeriesType:         entry.SeriesType,
			Weight:             entry.Weight,
			ActualWeight:       actual,
			Reps:               entry.Reps,
			Date:               entry.Date,
			EstimatedOneRepMax: EstimatedOneRepMax(actual, entry.Reps),
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records
}

type Best struct {
	BestWeight float64 `json:"bestWeight"`
	BestReps   int     `json:"bestReps"`
	BestOneRM  int     `json:"bestOneRm"`
}

// BestMetrics is the component-wise maximum. Empty input gives zeros.
func BestMetrics(records []ProgressRecord) Best {
	var best Best
	for _, r := range records {
		best.BestWeight = max(best.BestWeight, r.ActualWeight)
		best.BestReps = max(best.BestReps, r.Reps)
		best.BestOneRM = max(best.BestOneRM, r.EstimatedOneRepMax)
	}
	return best
}
