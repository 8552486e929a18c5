package service

import (
	"testing"
	"time"

	"critiquelab/internal/domain"
)

func unlockedSet(achievements []domain.Achievement) map[string]bool {
	out := make(map[string]bool)
	for _, a := range achievements {
		out[a.ID] = a.Unlocked
	}
	return out
}

func TestAchievementEvaluator_Empty(t *testing.T) {
	achievements := AchievementEvaluator{}.Compute(nil)

	if len(achievements) != len(badgeCatalog) {
		t.Fatalf("expected full catalog of %d, got %d", len(badgeCatalog), len(achievements))
	}
	for _, a := range achievements {
		if a.Unlocked {
			t.Fatalf("expected everything locked on empty input, %s unlocked", a.ID)
		}
		if a.UnlockedAt != nil {
			t.Fatalf("expected no timestamps on empty input, %s has one", a.ID)
		}
	}
}

func TestAchievementEvaluator_FirstRecord(t *testing.T) {
	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	achievements := AchievementEvaluator{}.Compute([]domain.ScoreRecord{
		{TotalScore: 60, ClarityScore: 15, LogicScore: 15, EvidenceScore: 15, DefenseScore: 15,
			Source: domain.SourceCritique, CreatedAt: created},
	})

	unlocked := unlockedSet(achievements)
	if !unlocked["first_blood"] {
		t.Fatalf("expected first_blood unlocked")
	}
	for _, id := range []string{"five_rounds", "sharpshooter", "masterclass", "iron_logic", "crystal_clear", "streak_3", "all_sources"} {
		if unlocked[id] {
			t.Fatalf("expected %s locked after one mediocre record", id)
		}
	}

	for _, a := range achievements {
		if a.ID == "first_blood" {
			if a.UnlockedAt == nil || !a.UnlockedAt.Equal(created) {
				t.Fatalf("expected first_blood timestamp %v, got %v", created, a.UnlockedAt)
			}
		}
	}
}

func TestAchievementEvaluator_FirstBloodUsesOldestRecord(t *testing.T) {
	oldest := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	newest := time.Date(2026, 5, 3, 8, 0, 0, 0, time.UTC)
	achievements := AchievementEvaluator{}.Compute([]domain.ScoreRecord{
		{TotalScore: 50, CreatedAt: newest},
		{TotalScore: 50, CreatedAt: oldest},
	})

	for _, a := range achievements {
		if a.ID == "first_blood" {
			if a.UnlockedAt == nil || !a.UnlockedAt.Equal(oldest) {
				t.Fatalf("expected oldest timestamp %v, got %v", oldest, a.UnlockedAt)
			}
		}
	}
}

func TestAchievementEvaluator_ScoreThresholds(t *testing.T) {
	achievements := AchievementEvaluator{}.Compute([]domain.ScoreRecord{
		{TotalScore: 85, ClarityScore: 25, LogicScore: 20, EvidenceScore: 20, DefenseScore: 20,
			CreatedAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
	})

	unlocked := unlockedSet(achievements)
	if !unlocked["sharpshooter"] {
		t.Fatalf("expected sharpshooter at 85")
	}
	if unlocked["masterclass"] {
		t.Fatalf("expected masterclass locked below 90")
	}
	if !unlocked["crystal_clear"] {
		t.Fatalf("expected crystal_clear with clarity 25")
	}
	if unlocked["iron_logic"] {
		t.Fatalf("expected iron_logic locked with logic 20")
	}
}

func TestAchievementEvaluator_CountStreakAndSources(t *testing.T) {
	var records []domain.ScoreRecord
	sources := []string{domain.SourceCritique, domain.SourceCoach, domain.SourceAutopsy}
	for i := 0; i < 5; i++ {
		records = append(records, domain.ScoreRecord{
			TotalScore: 40,
			Source:     sources[i%3],
			CreatedAt:  time.Date(2026, 5, 1+i, 12, 0, 0, 0, time.UTC),
		})
	}

	unlocked := unlockedSet(AchievementEvaluator{}.Compute(records))
	if !unlocked["five_rounds"] {
		t.Fatalf("expected five_rounds at 5 records")
	}
	if unlocked["twenty_rounds"] {
		t.Fatalf("expected twenty_rounds locked at 5 records")
	}
	if !unlocked["streak_3"] {
		t.Fatalf("expected streak_3 after 5 consecutive days")
	}
	if unlocked["streak_7"] {
		t.Fatalf("expected streak_7 locked at 5 days")
	}
	if !unlocked["all_sources"] {
		t.Fatalf("expected all_sources with three distinct sources")
	}
}

func TestAchievementEvaluator_DerivedNotSticky(t *testing.T) {
	// Los logros se recalculan desde cero: si los records que los ganaron
	// desaparecen, el logro vuelve a estar bloqueado.
	records := []domain.ScoreRecord{
		{TotalScore: 95, CreatedAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	if !unlockedSet(AchievementEvaluator{}.Compute(records))["masterclass"] {
		t.Fatalf("expected masterclass with a 95")
	}
	if unlockedSet(AchievementEvaluator{}.Compute(nil))["masterclass"] {
		t.Fatalf("expected masterclass relocked without records")
	}
}
