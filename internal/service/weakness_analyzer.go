package service

import "critiquelab/internal/domain"

// WeaknessAnalyzer proyecta la secuencia en series por categoria y deriva la
// categoria mas debil y la tendencia de corto plazo de cada una.
type WeaknessAnalyzer struct{}

// Compute devuelve las cuatro series cronologicas, la categoria con menor
// media (desempate por orden canonico) y la tendencia por categoria.
// Secuencia vacia: series vacias, weakest "clarity", sin tendencias.
func (WeaknessAnalyzer) Compute(records []domain.ScoreRecord) domain.WeaknessState {
	state := domain.WeaknessState{
		Clarity:  []int{},
		Logic:    []int{},
		Evidence: []int{},
		Defense:  []int{},
		Weakest:  "clarity",
		Trend:    []domain.CategoryTrend{},
	}
	if len(records) == 0 {
		return state
	}

	sorted := chronological(records)
	series := map[string][]int{}
	for _, cat := range domain.ScoreCategories {
		vals := make([]int, len(sorted))
		for i, rec := range sorted {
			vals[i] = rec.CategoryScore(cat)
		}
		series[cat] = vals
	}
	state.Clarity = series["clarity"]
	state.Logic = series["logic"]
	state.Evidence = series["evidence"]
	state.Defense = series["defense"]

	bestMean := 0.0
	for i, cat := range domain.ScoreCategories {
		m := mean(series[cat])
		if i == 0 || m < bestMean {
			bestMean = m
			state.Weakest = cat
		}
	}

	for _, cat := range domain.ScoreCategories {
		state.Trend = append(state.Trend, domain.CategoryTrend{
			Category:  cat,
			Direction: trendFor(series[cat]),
		})
	}

	return state
}

// trendFor compara la media de los ultimos 3 puntos contra la de los hasta 3
// anteriores; banda muerta de +-1 alrededor de cero.
func trendFor(vals []int) string {
	if len(vals) < 4 {
		return domain.TrendStable
	}

	recent := mean(vals[len(vals)-3:])

	start := len(vals) - 6
	if start < 0 {
		start = 0
	}
	older := mean(vals[start : len(vals)-3])

	diff := recent - older
	switch {
	case diff > 1:
		return domain.TrendImproving
	case diff < -1:
		return domain.TrendDeclining
	default:
		return domain.TrendStable
	}
}

func mean(vals []int) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return float64(sum) / float64(len(vals))
}
