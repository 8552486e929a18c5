package domain

import "time"

// RatingPoint es una entrada del historial de rating, una por record procesado.
type RatingPoint struct {
	Date   time.Time `json:"date"`
	Rating int       `json:"rating"`
}

// RatingState es la vista derivada del RatingEngine. No se persiste.
type RatingState struct {
	Rating        int           `json:"rating"`
	Tier          string        `json:"tier"`
	Percentile    int           `json:"percentile"`
	RatingHistory []RatingPoint `json:"rating_history"`
}

// StreakState es la vista derivada del StreakTracker.
type StreakState struct {
	CurrentStreak int            `json:"current_streak"`
	LongestStreak int            `json:"longest_streak"`
	ActivityMap   map[string]int `json:"activity_map"` // YYYY-MM-DD -> cantidad
}

// Direcciones de tendencia por categoria.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// CategoryTrend es la tendencia de corto plazo de una categoria.
type CategoryTrend struct {
	Category  string `json:"category"`
	Direction string `json:"direction"`
}

// WeaknessState es la vista derivada del WeaknessAnalyzer.
type WeaknessState struct {
	Clarity  []int           `json:"clarity"`
	Logic    []int           `json:"logic"`
	Evidence []int           `json:"evidence"`
	Defense  []int           `json:"defense"`
	Weakest  string          `json:"weakest"`
	Trend    []CategoryTrend `json:"trend"`
}

// Achievement es una insignia del catalogo con su estado derivado.
// El catalogo es configuracion inmutable; unlocked siempre se recalcula.
type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// LeaderboardEntry agrega las estadisticas publicas de un usuario.
type LeaderboardEntry struct {
	UserID         string    `json:"user_id"`
	DisplayName    string    `json:"display_name,omitempty"`
	HighestScore   int       `json:"highest_score"`
	AvgScore       float64   `json:"avg_score"`
	TotalArguments int       `json:"total_arguments"`
	LastActive     time.Time `json:"last_active"`
}
