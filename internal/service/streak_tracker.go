package service

import (
	"sort"
	"time"

	"critiquelab/internal/domain"
)

// StreakTracker deriva rachas de actividad por dia calendario UTC.
// La aritmetica de dias es entera: dos dias son consecutivos cuando sus
// numeros de dia difieren exactamente en 1.
type StreakTracker struct{}

// Compute construye el mapa de actividad y las rachas actual y maxima.
// La racha solo cuenta como "actual" si el ultimo dia activo es hoy o ayer.
func (t StreakTracker) Compute(records []domain.ScoreRecord) domain.StreakState {
	return t.computeAt(records, time.Now().UTC())
}

func (StreakTracker) computeAt(records []domain.ScoreRecord, now time.Time) domain.StreakState {
	activity := make(map[string]int)
	dayNums := make(map[string]int)
	for _, rec := range records {
		key := dayKey(rec.CreatedAt)
		activity[key]++
		dayNums[key] = dayNumber(rec.CreatedAt)
	}

	days := make([]string, 0, len(activity))
	for d := range activity {
		days = append(days, d)
	}
	sort.Strings(days)

	current, longest, streak := 0, 0, 0
	today := dayNumber(now)

	for i, d := range days {
		if i == 0 || dayNums[d]-dayNums[days[i-1]] != 1 {
			streak = 1
		} else {
			streak++
		}
		if streak > longest {
			longest = streak
		}
	}

	if len(days) > 0 {
		last := dayNums[days[len(days)-1]]
		if today-last <= 1 {
			current = streak
		}
	}

	return domain.StreakState{
		CurrentStreak: current,
		LongestStreak: longest,
		ActivityMap:   activity,
	}
}
