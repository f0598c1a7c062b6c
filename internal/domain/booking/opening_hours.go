package booking

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/models"
)

// DayHours is the per-weekday view used both to read and to replace a
// salon's opening hours.
type DayHours struct {
	IsOpen    bool    `json:"is_open"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

// DefaultTemplate is the week a new salon starts with: Monday to Friday
// 09:00-18:00, Saturday 10:00-16:00, Sunday closed.
func DefaultTemplate(salonID uint) []models.OpeningInterval {
	out := make([]models.OpeningInterval, 0, 6)
	for day := 0; day < 5; day++ {
		out = append(out, models.OpeningInterval{
			SalonID: salonID, Weekday: day, StartTime: "09:00", EndTime: "18:00", IsAvailable: true,
		})
	}
	out = append(out, models.OpeningInterval{
		SalonID: salonID, Weekday: 5, StartTime: "10:00", EndTime: "16:00", IsAvailable: true,
	})
	return out
}

// Summarize folds the intervals of each weekday into one display range
// (earliest start, latest end). Days without intervals are closed.
func Summarize(intervals []models.OpeningInterval) map[int]DayHours {
	out := make(map[int]DayHours, 7)
	for day := 0; day < 7; day++ {
		out[day] = DayHours{IsOpen: false}
	}

	for _, iv := range intervals {
		if iv.Weekday < 0 || iv.Weekday > 6 {
			continue
		}
		cur := out[iv.Weekday]
		if !cur.IsOpen {
			start, end := iv.StartTime, iv.EndTime
			out[iv.Weekday] = DayHours{IsOpen: true, StartTime: &start, EndTime: &end}
			continue
		}
		// canonical HH:MM strings order the same way as the times they encode
		if iv.StartTime < *cur.StartTime {
			start := iv.StartTime
			cur.StartTime = &start
		}
		if iv.EndTime > *cur.EndTime {
			end := iv.EndTime
			cur.EndTime = &end
		}
		out[iv.Weekday] = cur
	}

	return out
}

// StageOpeningHours validates the whole week and returns the intervals that
// replace the salon's current template. Days that are closed or lack a start
// or end time produce no interval. The first invalid weekday, in weekday
// order, fails the whole set.
func StageOpeningHours(salonID uint, days map[string]DayHours) ([]models.OpeningInterval, error) {
	type keyed struct {
		raw string
		day int
		in  DayHours
	}

	keys := make([]string, 0, len(days))
	for raw := range days {
		keys = append(keys, raw)
	}
	sort.Strings(keys)

	entries := make([]keyed, 0, len(days))
	for _, raw := range keys {
		day, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || day < 0 || day > 6 {
			return nil, ErrInvalidWeekdayHours(raw)
		}
		entries = append(entries, keyed{raw: raw, day: day, in: days[raw]})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].day < entries[j].day })

	staged := make([]models.OpeningInterval, 0, len(entries))
	for _, e := range entries {
		if !e.in.IsOpen || e.in.StartTime == nil || e.in.EndTime == nil ||
			*e.in.StartTime == "" || *e.in.EndTime == "" {
			continue
		}

		start, err := ParseClock(*e.in.StartTime)
		if err != nil {
			return nil, ErrInvalidWeekdayHours(strconv.Itoa(e.day))
		}
		end, err := ParseClock(*e.in.EndTime)
		if err != nil {
			return nil, ErrInvalidWeekdayHours(strconv.Itoa(e.day))
		}
		if !clockBefore(start, end) {
			return nil, ErrInvalidWeekdayHours(strconv.Itoa(e.day))
		}

		staged = append(staged, models.OpeningInterval{
			SalonID:     salonID,
			Weekday:     e.day,
			StartTime:   start,
			EndTime:     end,
			IsAvailable: true,
		})
	}

	return staged, nil
}

func clockBefore(a, b string) bool {
	ta, _ := time.Parse(ClockLayout, a)
	tb, _ := time.Parse(ClockLayout, b)
	return ta.Before(tb)
}
