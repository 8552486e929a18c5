package service

import (
	"critiquelab/internal/domain"
)

// badgeSpec define una insignia del catalogo: metadatos fijos mas el
// predicado puro que decide el desbloqueo.
type badgeSpec struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Unlocked    func(f achievementFacts) bool
}

// achievementFacts son los hechos agregados sobre los que se evaluan todos
// los predicados.
type achievementFacts struct {
	Count           int
	HighestScore    int
	PerfectLogic    bool
	PerfectClarity  bool
	LongestStreak   int
	DistinctSources int
}

// badgeCatalog es configuracion inmutable; el orden es el orden de
// declaracion y es el unico orden garantizado.
var badgeCatalog = []badgeSpec{
	{
		ID: "first_blood", Name: "First Blood", Icon: "⚔️",
		Description: "Complete your first scored argument",
		Unlocked:    func(f achievementFacts) bool { return f.Count >= 1 },
	},
	{
		ID: "five_rounds", Name: "Warming Up", Icon: "🔥",
		Description: "Score 5 arguments",
		Unlocked:    func(f achievementFacts) bool { return f.Count >= 5 },
	},
	{
		ID: "twenty_rounds", Name: "Veteran", Icon: "🎖️",
		Description: "Score 20 arguments",
		Unlocked:    func(f achievementFacts) bool { return f.Count >= 20 },
	},
	{
		ID: "sharpshooter", Name: "Sharpshooter", Icon: "🎯",
		Description: "Score above 80 on any argument",
		Unlocked:    func(f achievementFacts) bool { return f.HighestScore >= 80 },
	},
	{
		ID: "masterclass", Name: "Masterclass", Icon: "👑",
		Description: "Score above 90 on any argument",
		Unlocked:    func(f achievementFacts) bool { return f.HighestScore >= 90 },
	},
	{
		ID: "iron_logic", Name: "Iron Logic", Icon: "🧠",
		Description: "Get a perfect Logic score (25/25)",
		Unlocked:    func(f achievementFacts) bool { return f.PerfectLogic },
	},
	{
		ID: "crystal_clear", Name: "Crystal Clear", Icon: "💎",
		Description: "Get a perfect Clarity score (25/25)",
		Unlocked:    func(f achievementFacts) bool { return f.PerfectClarity },
	},
	{
		ID: "streak_3", Name: "On Fire", Icon: "🔥",
		Description: "Maintain a 3-day streak",
		Unlocked:    func(f achievementFacts) bool { return f.LongestStreak >= 3 },
	},
	{
		ID: "streak_7", Name: "Unstoppable", Icon: "⚡",
		Description: "Maintain a 7-day streak",
		Unlocked:    func(f achievementFacts) bool { return f.LongestStreak >= 7 },
	},
	{
		ID: "all_sources", Name: "Well-Rounded", Icon: "🌍",
		Description: "Score from critique, coach, and autopsy",
		Unlocked:    func(f achievementFacts) bool { return f.DistinctSources >= 3 },
	},
}

// AchievementEvaluator evalua el catalogo fijo de insignias contra la
// secuencia de scores. El desbloqueo es siempre un hecho derivado, nunca un
// evento persistido.
type AchievementEvaluator struct {
	streaks StreakTracker
}

// Compute devuelve el catalogo completo en orden de declaracion con su
// estado de desbloqueo. first_blood lleva el timestamp del record mas viejo.
func (e AchievementEvaluator) Compute(records []domain.ScoreRecord) []domain.Achievement {
	sorted := chronological(records)

	facts := achievementFacts{Count: len(sorted)}
	sources := make(map[string]struct{})
	for _, rec := range sorted {
		if rec.TotalScore > facts.HighestScore {
			facts.HighestScore = rec.TotalScore
		}
		if rec.LogicScore == 25 {
			facts.PerfectLogic = true
		}
		if rec.ClarityScore == 25 {
			facts.PerfectClarity = true
		}
		sources[rec.Source] = struct{}{}
	}
	facts.DistinctSources = len(sources)
	facts.LongestStreak = e.streaks.Compute(records).LongestStreak

	out := make([]domain.Achievement, 0, len(badgeCatalog))
	for _, spec := range badgeCatalog {
		a := domain.Achievement{
			ID:          spec.ID,
			Name:        spec.Name,
			Description: spec.Description,
			Icon:        spec.Icon,
			Unlocked:    spec.Unlocked(facts),
		}
		if spec.ID == "first_blood" && len(sorted) > 0 {
			ts := sorted[0].CreatedAt
			a.UnlockedAt = &ts
		}
		out = append(out, a)
	}
	return out
}
