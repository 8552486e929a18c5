package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"critiquelab/internal/domain"
	"critiquelab/internal/llm"
)

const autopsySystemPrompt = `You are an argument structure analyzer. Dissect the given text sentence by sentence.

CATEGORIES:
- claim: A debatable assertion the author wants the reader to accept
- reasoning: Logic connecting claims to evidence or conclusions
- evidence: Facts, data, examples, or citations that support a claim
- impact: Why this matters, consequences, significance
- filler: Restatement, repetition, or content that adds no analytical value

ANALYSIS REQUIREMENTS:
1. Split the text into sentences
2. Classify each sentence into exactly ONE category with a one-sentence explanation
3. Calculate what percentage of the argument is actual analysis vs filler
4. Identify missing components (e.g., "No impact detected", "Missing evidence")
5. Calculate an overall argument strength score (0-100)
6. Provide 3-5 actionable improvement suggestions in student-friendly language

SCORING GUIDELINES:
- 0-30: Mostly filler, lacks structure
- 31-50: Has some elements but missing key components
- 51-70: Decent structure, needs refinement
- 71-85: Strong argument with minor gaps
- 86-100: Exceptional, well-structured argument (rare)

You MUST respond with this exact JSON structure:
{
  "sentences": [{"text": "...", "category": "claim|reasoning|evidence|impact|filler", "explanation": "..."}],
  "healthSummary": {
    "analysisPercentage": <0-100>,
    "fillerPercentage": <0-100>,
    "missingComponents": ["..."],
    "argumentStrengthScore": <0-100>,
    "breakdown": {"claims": <n>, "reasoning": <n>, "evidence": <n>, "impact": <n>, "filler": <n>}
  },
  "suggestions": [{"type": "add_warrant|add_evidence|add_impact|reduce_filler|clarify_claim|strengthen_reasoning", "text": "...", "targetSentence": <index or null>}]
}`

// AutopsyService clasifica oraciones y resume la salud estructural de un
// argumento.
type AutopsyService struct {
	llmClient llm.Client
	logger    *zap.Logger
}

func NewAutopsyService(llmClient llm.Client, logger *zap.Logger) *AutopsyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AutopsyService{llmClient: llmClient, logger: logger}
}

// Analyze valida el texto y devuelve el analisis validado contra esquema.
func (s *AutopsyService) Analyze(ctx context.Context, text string) (domain.ArgumentAnalysis, error) {
	sanitized, err := ValidateText(text)
	if err != nil {
		return domain.ArgumentAnalysis{}, err
	}

	raw, err := s.llmClient.Generate(ctx, autopsySystemPrompt, "Analyze this argument:\n\n"+sanitized)
	if err != nil {
		return domain.ArgumentAnalysis{}, fmt.Errorf("autopsy generate: %w", err)
	}

	candidate := extractFirstJSONObject(cleanOracleJSON(raw))
	if candidate == "" {
		candidate = extractFirstJSONObject(raw)
	}
	if candidate == "" {
		return domain.ArgumentAnalysis{}, fmt.Errorf("%w: no json object found", ErrInvalidOracleResponse)
	}

	var analysis domain.ArgumentAnalysis
	if err := validateOracleJSON(candidate, autopsySchema, &analysis); err != nil {
		s.logger.Warn("autopsy parse failed", zap.Error(err))
		return domain.ArgumentAnalysis{}, err
	}
	return analysis, nil
}
