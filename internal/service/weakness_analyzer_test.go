package service

import (
	"testing"
	"time"

	"critiquelab/internal/domain"
)

func categoryRecord(day, clarity, logic, evidence, defense int) domain.ScoreRecord {
	return domain.ScoreRecord{
		ClarityScore:  clarity,
		LogicScore:    logic,
		EvidenceScore: evidence,
		DefenseScore:  defense,
		CreatedAt:     time.Date(2026, 4, day, 12, 0, 0, 0, time.UTC),
	}
}

func TestWeaknessAnalyzer_Empty(t *testing.T) {
	state := WeaknessAnalyzer{}.Compute(nil)

	if state.Weakest != "clarity" {
		t.Fatalf("expected default weakest clarity, got %s", state.Weakest)
	}
	if len(state.Clarity) != 0 || len(state.Logic) != 0 || len(state.Evidence) != 0 || len(state.Defense) != 0 {
		t.Fatalf("expected empty series, got %+v", state)
	}
	if len(state.Trend) != 0 {
		t.Fatalf("expected no trends on empty input, got %+v", state.Trend)
	}
}

func TestWeaknessAnalyzer_WeakestByMean(t *testing.T) {
	state := WeaknessAnalyzer{}.Compute([]domain.ScoreRecord{
		categoryRecord(1, 20, 15, 18, 22),
		categoryRecord(2, 20, 15, 18, 22),
	})

	if state.Weakest != "logic" {
		t.Fatalf("expected weakest logic, got %s", state.Weakest)
	}
	if len(state.Logic) != 2 || state.Logic[0] != 15 {
		t.Fatalf("unexpected logic series: %+v", state.Logic)
	}
}

func TestWeaknessAnalyzer_TieBreaksCanonical(t *testing.T) {
	// Empate total: gana la primera categoria del orden canonico.
	state := WeaknessAnalyzer{}.Compute([]domain.ScoreRecord{
		categoryRecord(1, 15, 15, 15, 15),
	})
	if state.Weakest != "clarity" {
		t.Fatalf("expected tie broken to clarity, got %s", state.Weakest)
	}
}

func TestWeaknessAnalyzer_SeriesChronological(t *testing.T) {
	// Input mas nuevo primero; las series salen en orden cronologico.
	state := WeaknessAnalyzer{}.Compute([]domain.ScoreRecord{
		categoryRecord(3, 22, 0, 0, 0),
		categoryRecord(1, 10, 0, 0, 0),
		categoryRecord(2, 16, 0, 0, 0),
	})

	want := []int{10, 16, 22}
	for i, v := range want {
		if state.Clarity[i] != v {
			t.Fatalf("expected clarity series %v, got %v", want, state.Clarity)
		}
	}
}

func TestTrendFor(t *testing.T) {
	cases := []struct {
		name string
		vals []int
		want string
	}{
		{"too few points", []int{10, 10, 10}, domain.TrendStable},
		{"improving", []int{10, 10, 10, 20, 20, 20}, domain.TrendImproving},
		{"declining", []int{20, 20, 20, 10, 10, 10}, domain.TrendDeclining},
		{"within dead band", []int{10, 10, 10, 11}, domain.TrendStable},
		{"four points improving", []int{5, 15, 15, 15}, domain.TrendImproving},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := trendFor(tc.vals); got != tc.want {
				t.Fatalf("trendFor(%v) = %s, want %s", tc.vals, got, tc.want)
			}
		})
	}
}

func TestWeaknessAnalyzer_TrendPerCategory(t *testing.T) {
	records := []domain.ScoreRecord{
		categoryRecord(1, 5, 20, 10, 10),
		categoryRecord(2, 5, 20, 10, 10),
		categoryRecord(3, 5, 20, 10, 10),
		categoryRecord(4, 20, 5, 10, 10),
		categoryRecord(5, 20, 5, 10, 10),
		categoryRecord(6, 20, 5, 10, 10),
	}
	state := WeaknessAnalyzer{}.Compute(records)

	byCat := map[string]string{}
	for _, tr := range state.Trend {
		byCat[tr.Category] = tr.Direction
	}
	if byCat["clarity"] != domain.TrendImproving {
		t.Fatalf("expected clarity improving, got %s", byCat["clarity"])
	}
	if byCat["logic"] != domain.TrendDeclining {
		t.Fatalf("expected logic declining, got %s", byCat["logic"])
	}
	if byCat["evidence"] != domain.TrendStable || byCat["defense"] != domain.TrendStable {
		t.Fatalf("expected evidence and defense stable, got %+v", byCat)
	}
}
