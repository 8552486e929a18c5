package service

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"critiquelab/internal/domain"
	"critiquelab/internal/llm"
	"critiquelab/internal/store"
)

// previewLength recorta el texto original para listados del historial.
const previewLength = 100

const scoreSystemPrompt = `You are an argument scoring engine. Analyze the given text and score it across 4 categories, each 0-25 points.

Categories:
1. Clarity (0-25): Is the argument clear, focused, and well-structured?
2. Logic (0-25): Does the reasoning follow logically? Are there fallacies?
3. Evidence (0-25): Is support sufficient, relevant, and well-cited?
4. Defense (0-25): How well would this hold up against counterarguments?

Be fair but rigorous. Most arguments score 40-70 total. Scores above 85 are exceptional.

You MUST respond using the score_argument tool.`

// scoreArgumentArgs es el payload de la tool call del oraculo de puntuacion.
type scoreArgumentArgs struct {
	ClarityScore        int    `json:"clarity_score"`
	LogicScore          int    `json:"logic_score"`
	EvidenceScore       int    `json:"evidence_score"`
	DefenseScore        int    `json:"defense_score"`
	ClarityExplanation  string `json:"clarity_explanation"`
	LogicExplanation    string `json:"logic_explanation"`
	EvidenceExplanation string `json:"evidence_explanation"`
	DefenseExplanation  string `json:"defense_explanation"`
	ClaritySuggestion   string `json:"clarity_suggestion"`
	LogicSuggestion     string `json:"logic_suggestion"`
	EvidenceSuggestion  string `json:"evidence_suggestion"`
	DefenseSuggestion   string `json:"defense_suggestion"`
}

// ScoreService puntua argumentos via tool-calling y construye ScoreRecords.
type ScoreService struct {
	llmClient llm.Client
	scores    *store.ScoreStore
	logger    *zap.Logger
}

func NewScoreService(llmClient llm.Client, scores *store.ScoreStore, logger *zap.Logger) *ScoreService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreService{
		llmClient: llmClient,
		scores:    scores,
		logger:    logger,
	}
}

// ScoreArgument valida y puntua el texto, suma el total de las cuatro
// categorias y persiste el record resultante. Ante fallo del oraculo o de la
// validacion de forma no se guarda nada.
func (s *ScoreService) ScoreArgument(ctx context.Context, userID, text, source string) (domain.ScoreRecord, error) {
	sanitized, err := ValidateText(text)
	if err != nil {
		return domain.ScoreRecord{}, err
	}
	source = NormalizeSource(source)

	rawArgs, err := s.llmClient.GenerateWithTool(ctx, scoreSystemPrompt,
		"Score this argument:\n\n"+sanitized,
		llm.ToolSpec{
			Name:        "score_argument",
			Description: "Return the argument score breakdown",
			Parameters:  json.RawMessage(scoreArgumentSchemaJSON),
		})
	if err != nil {
		return domain.ScoreRecord{}, fmt.Errorf("score generate: %w", err)
	}

	var args scoreArgumentArgs
	if err := validateOracleJSON(rawArgs, scoreArgumentSchema, &args); err != nil {
		s.logger.Warn("score parse failed", zap.Error(err))
		return domain.ScoreRecord{}, err
	}

	preview := sanitized
	if runes := []rune(preview); len(runes) > previewLength {
		preview = string(runes[:previewLength])
	}

	record := s.scores.AddScore(ctx, userID, domain.ScoreRecord{
		Source:              source,
		InputPreview:        preview,
		TotalScore:          args.ClarityScore + args.LogicScore + args.EvidenceScore + args.DefenseScore,
		ClarityScore:        args.ClarityScore,
		LogicScore:          args.LogicScore,
		EvidenceScore:       args.EvidenceScore,
		DefenseScore:        args.DefenseScore,
		ClarityExplanation:  args.ClarityExplanation,
		LogicExplanation:    args.LogicExplanation,
		EvidenceExplanation: args.EvidenceExplanation,
		DefenseExplanation:  args.DefenseExplanation,
		ClaritySuggestion:   args.ClaritySuggestion,
		LogicSuggestion:     args.LogicSuggestion,
		EvidenceSuggestion:  args.EvidenceSuggestion,
		DefenseSuggestion:   args.DefenseSuggestion,
	})
	return record, nil
}
