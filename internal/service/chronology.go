package service

import (
	"sort"
	"time"

	"critiquelab/internal/domain"
)

// chronological devuelve una copia de los records ordenada por CreatedAt
// ascendente. Los stores entregan mas-nuevo-primero; los motores derivados
// trabajan en orden cronologico.
func chronological(records []domain.ScoreRecord) []domain.ScoreRecord {
	out := make([]domain.ScoreRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// dayKey trunca un timestamp a su dia calendario UTC (YYYY-MM-DD).
func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// dayNumber cuenta dias calendario UTC desde epoch. La resta entre dos
// dayNumber es una diferencia entera de dias, sin division flotante de
// milisegundos ni sorpresas de DST.
func dayNumber(t time.Time) int {
	u := t.UTC()
	midnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return int(midnight.Unix() / 86400)
}
