package service

import (
	"math"

	"critiquelab/internal/domain"
)

// Parametros del rating: cada argumento se trata como una partida contra un
// oponente de referencia fijo de 65/100. No es un ELO simetrico entre
// usuarios.
const (
	ratingSeed      = 1000
	ratingKFactor   = 32
	ratingFloor     = 100
	ratingCeiling   = 2500
	benchmarkScore  = 65
	percentileScale = 200
)

type ratingTier struct {
	Min   int
	Label string
}

// ratingTiers en orden ascendente; la busqueda camina de mayor a menor y
// devuelve el primer umbral <= rating. La tabla se replica literal: un
// rating semilla de 1000 cae en Gold, no en Bronze.
var ratingTiers = []ratingTier{
	{Min: 0, Label: "Bronze"},
	{Min: 800, Label: "Silver"},
	{Min: 1000, Label: "Gold"},
	{Min: 1200, Label: "Platinum"},
	{Min: 1400, Label: "Diamond"},
	{Min: 1600, Label: "Grandmaster"},
}

// RatingEngine deriva el rating estilo ELO de la secuencia de scores.
// Funcion pura del input; se recalcula completo en cada acceso.
type RatingEngine struct{}

// Compute recorre los records en orden cronologico y devuelve rating, tier,
// percentil e historial. Secuencia vacia: 1000 / Gold / 50 / historial vacio.
func (RatingEngine) Compute(records []domain.ScoreRecord) domain.RatingState {
	rating := ratingSeed
	history := make([]domain.RatingPoint, 0, len(records))

	for _, rec := range chronological(records) {
		actual := float64(rec.TotalScore) / 100.0
		expected := 1.0 / (1.0 + math.Pow(10, float64(benchmarkScore-rec.TotalScore)/40.0))
		rating = int(math.Round(float64(rating) + ratingKFactor*(actual-expected)))
		if rating < ratingFloor {
			rating = ratingFloor
		}
		if rating > ratingCeiling {
			rating = ratingCeiling
		}
		history = append(history, domain.RatingPoint{Date: rec.CreatedAt, Rating: rating})
	}

	return domain.RatingState{
		Rating:        rating,
		Tier:          tierFor(rating),
		Percentile:    percentileFor(rating),
		RatingHistory: history,
	}
}

func tierFor(rating int) string {
	for i := len(ratingTiers) - 1; i >= 0; i-- {
		if rating >= ratingTiers[i].Min {
			return ratingTiers[i].Label
		}
	}
	return ratingTiers[0].Label
}

// percentileFor aproxima el percentil con una sigmoide centrada en 1000.
func percentileFor(rating int) int {
	z := float64(rating-ratingSeed) / percentileScale
	p := 1.0 / (1.0 + math.Exp(-z))
	return int(math.Round(p * 100))
}
