package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"critiquelab/internal/domain"
	"critiquelab/internal/llm"
	"critiquelab/internal/store"
)

// CritiqueService genera criticas por persona contra el gateway y las guarda
// en el historial del usuario.
type CritiqueService struct {
	llmClient llm.Client
	critiques *store.CritiqueStore
	logger    *zap.Logger
}

func NewCritiqueService(llmClient llm.Client, critiques *store.CritiqueStore, logger *zap.Logger) *CritiqueService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CritiqueService{
		llmClient: llmClient,
		critiques: critiques,
		logger:    logger,
	}
}

// Critique valida la entrada, llama al oraculo con el prompt de la persona,
// valida la forma de la respuesta contra su esquema y persiste el resultado.
// Ante cualquier fallo no se guarda nada.
func (s *CritiqueService) Critique(ctx context.Context, userID, text, persona string) (domain.SavedCritique, error) {
	sanitized, err := ValidateText(text)
	if err != nil {
		return domain.SavedCritique{}, err
	}
	persona = NormalizePersona(persona)

	system := baseSystemPrompt + "\n\n" + personaPrompt(persona)
	raw, err := s.llmClient.Generate(ctx, system, "Analyze and critique this submission:\n\n"+sanitized)
	if err != nil {
		return domain.SavedCritique{}, fmt.Errorf("critique generate: %w", err)
	}

	result, err := s.parseCritique(raw, persona)
	if err != nil {
		s.logger.Warn("critique parse failed", zap.Error(err), zap.String("persona", persona))
		return domain.SavedCritique{}, err
	}

	saved := s.critiques.Add(ctx, userID, sanitized, result)
	return saved, nil
}

// parseCritique limpia fences, extrae el primer objeto JSON balanceado y lo
// valida contra el esquema de la persona activa.
func (s *CritiqueService) parseCritique(raw, persona string) (domain.CritiqueResult, error) {
	candidate := extractFirstJSONObject(cleanOracleJSON(raw))
	if candidate == "" {
		candidate = extractFirstJSONObject(raw)
	}
	if candidate == "" {
		return domain.CritiqueResult{}, fmt.Errorf("%w: no json object found", ErrInvalidOracleResponse)
	}

	result := domain.CritiqueResult{Persona: persona}
	switch persona {
	case domain.PersonaDemo:
		var c domain.DemoCritique
		if err := validateOracleJSON(candidate, demoCritiqueSchema, &c); err != nil {
			return domain.CritiqueResult{}, err
		}
		result.Demo = &c
	case domain.PersonaProGeneral:
		var c domain.ProGeneralCritique
		if err := validateOracleJSON(candidate, proGeneralCritiqueSchema, &c); err != nil {
			return domain.CritiqueResult{}, err
		}
		result.ProGeneral = &c
	case domain.PersonaProBusiness:
		var c domain.ProBusinessCritique
		if err := validateOracleJSON(candidate, proBusinessCritiqueSchema, &c); err != nil {
			return domain.CritiqueResult{}, err
		}
		result.ProBusiness = &c
	default:
		var c domain.FreeCritique
		if err := validateOracleJSON(candidate, freeCritiqueSchema, &c); err != nil {
			return domain.CritiqueResult{}, err
		}
		result.Free = &c
	}
	return result, nil
}
