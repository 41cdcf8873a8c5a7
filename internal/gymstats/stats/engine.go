package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/2beens/liftlog/internal/gymstats"
	"github.com/2beens/liftlog/internal/gymstats/sessions"
)

const (
	topExercisesCount   = 5
	recentSessionsCount = 10
	dateLayout          = "2006-01-02"
)

var ErrInvalidMonth = gymstats.NewValidationError("month must be between 1 and 12")

type ExerciseUsage struct {
	ExerciseID  int    `json:"exerciseId"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	UsageCount  int    `json:"usageCount"`
}

type MuscleGroupCount struct {
	MuscleGroup   string `json:"muscleGroup"`
	ExerciseCount int    `json:"exerciseCount"`
}

type RecentSession struct {
	ID              int       `json:"id"`
	WorkoutID       *int      `json:"workoutId,omitempty"`
	WorkoutName     string    `json:"workoutName,omitempty"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	TotalVolume     int       `json:"totalVolume"`
	DurationMinutes float64   `json:"durationMinutes"`
}

type Dashboard struct {
	TotalWorkouts      int                `json:"totalWorkouts"`
	WeeklyWorkouts     int                `json:"weeklyWorkouts"`
	WeeklyVolume       int                `json:"weeklyVolume"`
	MonthlyVolume      int                `json:"monthlyVolume"`
	AvgDurationMinutes float64            `json:"avgDurationMinutes"`
	TopExercises       []ExerciseUsage    `json:"topExercises"`
	MuscleGroupStats   []MuscleGroupCount `json:"muscleGroupStats"`
	RecentSessions     []RecentSession    `json:"recentSessions"`
}

type DailyBreakdown struct {
	Date               string  `json:"date"`
	SessionsCount      int     `json:"sessionsCount"`
	Volume             int     `json:"volume"`
	AvgDurationMinutes float64 `json:"avgDurationMinutes"`
}

type MonthlySummary struct {
	Year           int              `json:"year"`
	Month          int              `json:"month"`
	TotalWorkouts  int              `json:"totalWorkouts"`
	TotalVolume    int              `json:"totalVolume"`
	DailyBreakdown []DailyBreakdown `json:"dailyBreakdown"`
}

// Engine reduces ended sessions to statistics. Sessions still in progress
// are ignored by every method.
type Engine struct {
	Now       func() time.Time
	WeekStart time.Weekday
	Location  *time.Location
}

func NewEngine(weekStart time.Weekday, loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{
		Now:       time.Now,
		WeekStart: weekStart,
		Location:  loc,
	}
}

func (e *Engine) location() *time.Location {
	if e.Location == nil {
		return time.UTC
	}
	return e.Location
}

func (e *Engine) startOfDay(t time.Time) time.Time {
	t = t.In(e.location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, e.location())
}

// CurrentWeek returns [start, end) of the week containing now.
func (e *Engine) CurrentWeek() (time.Time, time.Time) {
	day := e.startOfDay(e.Now())
	offset := (int(day.Weekday()) - int(e.WeekStart) + 7) % 7
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

// CurrentMonth returns [start, end) of the month containing now.
func (e *Engine) CurrentMonth() (time.Time, time.Time) {
	now := e.Now().In(e.location())
	return e.MonthRange(now.Year(), int(now.Month()))
}

// MonthRange returns [start, end) of the given month in the engine location.
func (e *Engine) MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, e.location())
	return start, start.AddDate(0, 1, 0)
}

func within(t, from, to time.Time) bool {
	return !t.Before(from) && t.Before(to)
}

func endedOnly(all []sessions.Session) []sessions.Session {
	ended := make([]sessions.Session, 0, len(all))
	for _, s := range all {
		if s.Ended() {
			ended = append(ended, s)
		}
	}
	return ended
}

func volumeOf(s sessions.Session) int {
	if s.TotalVolume == nil {
		return 0
	}
	return *s.TotalVolume
}

func avgMinutes(total time.Duration, count int) float64 {
	if count == 0 {
		return 0
	}
	return total.Minutes() / float64(count)
}

func (e *Engine) Dashboard(all []sessions.Session) Dashboard {
	ended := endedOnly(all)
	weekFrom, weekTo := e.CurrentWeek()
	monthFrom, monthTo := e.CurrentMonth()

	dashboard := Dashboard{
		TotalWorkouts:    len(ended),
		TopExercises:     []ExerciseUsage{},
		MuscleGroupStats: []MuscleGroupCount{},
		RecentSessions:   []RecentSession{},
	}

	var totalDuration time.Duration
	usage := make(map[int]*ExerciseUsage)
	muscleGroups := make(map[string]int)
	for _, s := range ended {
		totalDuration += s.Duration()

		if within(s.StartTime, weekFrom, weekTo) {
			dashboard.WeeklyWorkouts++
			dashboard.WeeklyVolume += volumeOf(s)
		}
		inMonth := within(s.StartTime, monthFrom, monthTo)
		if inMonth {
			dashboard.MonthlyVolume += volumeOf(s)
		}

		for _, ex := range s.Exercises {
			u, ok := usage[ex.ExerciseID]
			if !ok {
				u = &ExerciseUsage{ExerciseID: ex.ExerciseID, Name: ex.Name, MuscleGroup: ex.MuscleGroup}
				usage[ex.ExerciseID] = u
			}
			u.UsageCount++
			if inMonth {
				muscleGroups[ex.MuscleGroup]++
			}
		}
	}
	dashboard.AvgDurationMinutes = avgMinutes(totalDuration, len(ended))

	for _, u := range usage {
		dashboard.TopExercises = append(dashboard.TopExercises, *u)
	}
	sort.Slice(dashboard.TopExercises, func(i, j int) bool {
		a, b := dashboard.TopExercises[i], dashboard.TopExercises[j]
		if a.UsageCount != b.UsageCount {
			return a.UsageCount > b.UsageCount
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ExerciseID < b.ExerciseID
	})
	if len(dashboard.TopExercises) > topExercisesCount {
		dashboard.TopExercises = dashboard.TopExercises[:topExercisesCount]
	}

	for group, count := range muscleGroups {
		dashboard.MuscleGroupStats = append(dashboard.MuscleGroupStats, MuscleGroupCount{
			MuscleGroup:   group,
			ExerciseCount: count,
		})
	}
	sort.Slice(dashboard.MuscleGroupStats, func(i, j int) bool {
		a, b := dashboard.MuscleGroupStats[i], dashboard.MuscleGroupStats[j]
		if a.ExerciseCount != b.ExerciseCount {
			return a.ExerciseCount > b.ExerciseCount
		}
		return a.MuscleGroup < b.MuscleGroup
	})

	recent := make([]sessions.Session, len(ended))
	copy(recent, ended)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].StartTime.After(recent[j].StartTime)
	})
	if len(recent) > recentSessionsCount {
		recent = recent[:recentSessionsCount]
	}
	for _, s := range recent {
		dashboard.RecentSessions = append(dashboard.RecentSessions, RecentSession{
			ID:              s.ID,
			WorkoutID:       s.WorkoutID,
			WorkoutName:     s.WorkoutName,
			StartTime:       s.StartTime,
			EndTime:         *s.EndTime,
			TotalVolume:     volumeOf(s),
			DurationMinutes: s.Duration().Minutes(),
		})
	}

	return dashboard
}

func validMonth(month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}
	return nil
}

// MonthlySummary aggregates the ended sessions started in the given month, per day.
func (e *Engine) MonthlySummary(all []sessions.Session, year, month int) (*MonthlySummary, error) {
	if err := validMonth(month); err != nil {
		return nil, err
	}

	from, to := e.MonthRange(year, month)
	summary := &MonthlySummary{
		Year:           year,
		Month:          month,
		DailyBreakdown: []DailyBreakdown{},
	}

	type dayAcc struct {
		count    int
		volume   int
		duration time.Duration
	}
	days := make(map[string]*dayAcc)
	for _, s := range endedOnly(all) {
		if !within(s.StartTime, from, to) {
			continue
		}
		summary.TotalWorkouts++
		summary.TotalVolume += volumeOf(s)

		date := s.StartTime.In(e.location()).Format(dateLayout)
		acc, ok := days[date]
		if !ok {
			acc = &dayAcc{}
			days[date] = acc
		}
		acc.count++
		acc.volume += volumeOf(s)
		acc.duration += s.Duration()
	}

	for date, acc := range days {
		summary.DailyBreakdown = append(summary.DailyBreakdown, DailyBreakdown{
			Date:               date,
			SessionsCount:      acc.count,
			Volume:             acc.volume,
			AvgDurationMinutes: avgMinutes(acc.duration, acc.count),
		})
	}
	// dates are zero padded, string order is calendar order
	sort.Slice(summary.DailyBreakdown, func(i, j int) bool {
		return summary.DailyBreakdown[i].Date < summary.DailyBreakdown[j].Date
	})

	return summary, nil
}

// CalendarData maps each day (YYYY-MM-DD) of the month to its number of ended sessions.
// Days without sessions are absent.
func (e *Engine) CalendarData(all []sessions.Session, year, month int) (map[string]int, error) {
	if err := validMonth(month); err != nil {
		return nil, err
	}

	from, to := e.MonthRange(year, month)
	calendar := make(map[string]int)
	for _, s := range endedOnly(all) {
		if !within(s.StartTime, from, to) {
			continue
		}
		calendar[s.StartTime.In(e.location()).Format(dateLayout)]++
	}
	return calendar, nil
}
