package domain

import "time"

// Fuentes validas para un ScoreRecord: desde que superficie del producto se puntuo.
const (
	SourceCritique = "critique"
	SourceCoach    = "coach"
	SourceAutopsy  = "autopsy"
)

// ScoreCategories fija el orden canonico de las cuatro categorias.
// El desempate de "weakest" depende de este orden.
var ScoreCategories = []string{"clarity", "logic", "evidence", "defense"}

// ScoreRecord representa un evento de puntuacion completado.
// Invariante al crearlo: TotalScore == Clarity+Logic+Evidence+Defense, cada una en [0,25].
type ScoreRecord struct {
	ID                  string    `json:"id"`
	Source              string    `json:"source"`
	InputPreview        string    `json:"input_preview"`
	TotalScore          int       `json:"total_score"`
	ClarityScore        int       `json:"clarity_score"`
	LogicScore          int       `json:"logic_score"`
	EvidenceScore       int       `json:"evidence_score"`
	DefenseScore        int       `json:"defense_score"`
	ClarityExplanation  string    `json:"clarity_explanation"`
	LogicExplanation    string    `json:"logic_explanation"`
	EvidenceExplanation string    `json:"evidence_explanation"`
	DefenseExplanation  string    `json:"defense_explanation"`
	ClaritySuggestion   string    `json:"clarity_suggestion"`
	LogicSuggestion     string    `json:"logic_suggestion"`
	EvidenceSuggestion  string    `json:"evidence_suggestion"`
	DefenseSuggestion   string    `json:"defense_suggestion"`
	CreatedAt           time.Time `json:"created_at"`
}

// CategoryScore devuelve la puntuacion de una categoria por clave canonica.
func (r ScoreRecord) CategoryScore(category string) int {
	switch category {
	case "clarity":
		return r.ClarityScore
	case "logic":
		return r.LogicScore
	case "evidence":
		return r.EvidenceScore
	case "defense":
		return r.DefenseScore
	default:
		return 0
	}
}

// CategoryAverages agrupa medias redondeadas por categoria.
type CategoryAverages struct {
	Clarity  int `json:"clarity"`
	Logic    int `json:"logic"`
	Evidence int `json:"evidence"`
	Defense  int `json:"defense"`
}

// ValidSource indica si source pertenece a la lista blanca.
func ValidSource(source string) bool {
	switch source {
	case SourceCritique, SourceCoach, SourceAutopsy:
		return true
	}
	return false
}
