package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"critiquelab/internal/domain"
	"critiquelab/internal/llm"
)

const coachSystemPrompt = `You are a Counterargument Coach - a sharp, articulate debate opponent. Your job is to challenge the user's position with strong, well-reasoned counterarguments from three distinct perspectives. You are a debate sparring partner, not a teacher.

YOUR TASK:
1. Read the user's argument carefully
2. Generate exactly 3 strong counterarguments, one from each perspective:
   - LOGICAL: Attack the reasoning, logic, or internal consistency
   - ETHICAL: Challenge the moral, ethical, or values-based foundations
   - PRACTICAL: Attack real-world feasibility, consequences, or implementation
3. For each counterargument explain the argument itself (2-4 sentences), why it's persuasive (1-2 sentences), and which specific claim it targets
4. Provide a Rebuttal Coach section guiding the user on how to defend WITHOUT writing the rebuttal for them

REBUTTAL COACH RULES:
- Do NOT write the rebuttal
- Identify what claim needs defending and what evidence is missing
- Provide sentence starters and one strategic tip

You MUST respond with this exact JSON structure:
{
  "counterarguments": [
    {"perspective": "logical", "title": "...", "argument": "...", "whyPersuasive": "...", "attacksWhat": "..."},
    {"perspective": "ethical", "title": "...", "argument": "...", "whyPersuasive": "...", "attacksWhat": "..."},
    {"perspective": "practical", "title": "...", "argument": "...", "whyPersuasive": "...", "attacksWhat": "..."}
  ],
  "rebuttonCoach": {
    "claimToDefend": "...",
    "missingEvidence": ["..."],
    "sentenceStarters": ["..."],
    "strategyTip": "..."
  }
}`

// CoachService genera contraargumentos desde tres perspectivas mas una guia
// de replica.
type CoachService struct {
	llmClient llm.Client
	logger    *zap.Logger
}

func NewCoachService(llmClient llm.Client, logger *zap.Logger) *CoachService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CoachService{llmClient: llmClient, logger: logger}
}

// Coach valida el texto y devuelve el resultado validado contra esquema.
func (s *CoachService) Coach(ctx context.Context, text string) (domain.CoachResult, error) {
	sanitized, err := ValidateText(text)
	if err != nil {
		return domain.CoachResult{}, err
	}

	raw, err := s.llmClient.Generate(ctx, coachSystemPrompt, "Challenge this argument:\n\n"+sanitized)
	if err != nil {
		return domain.CoachResult{}, fmt.Errorf("coach generate: %w", err)
	}

	candidate := extractFirstJSONObject(cleanOracleJSON(raw))
	if candidate == "" {
		candidate = extractFirstJSONObject(raw)
	}
	if candidate == "" {
		return domain.CoachResult{}, fmt.Errorf("%w: no json object found", ErrInvalidOracleResponse)
	}

	var result domain.CoachResult
	if err := validateOracleJSON(candidate, coachSchema, &result); err != nil {
		s.logger.Warn("coach parse failed", zap.Error(err))
		return domain.CoachResult{}, err
	}
	return result, nil
}
