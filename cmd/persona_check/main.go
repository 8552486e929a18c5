package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"critiquelab/internal/config"
	"critiquelab/internal/domain"
	"critiquelab/internal/kv"
	"critiquelab/internal/llm"
	"critiquelab/internal/service"
	"critiquelab/internal/store"
)

const (
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorReset = "\033[0m"
)

// Argumento deliberadamente mediocre: afirmacion fuerte, evidencia anecdotica.
const testArgument = `Las empresas deberian adoptar la semana laboral de cuatro dias porque ` +
	`un amigo mio trabaja cuatro dias y dice que es mas productivo. Ademas, menos dias ` +
	`de oficina significa menos gasto en electricidad, asi que todos ganan.`

func main() {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewNop()
	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, log.Default())

	critiques := store.NewCritiqueStore(kv.NewMemoryStore(), logger)
	scores := store.NewScoreStore(kv.NewMemoryStore(), logger)
	critiqueSvc := service.NewCritiqueService(llmClient, critiques, logger)
	scoreSvc := service.NewScoreService(llmClient, scores, logger)
	coachSvc := service.NewCoachService(llmClient, logger)
	autopsySvc := service.NewAutopsyService(llmClient, logger)

	personas := []string{
		domain.PersonaDemo,
		domain.PersonaFree,
		domain.PersonaProGeneral,
		domain.PersonaProBusiness,
	}

	passed, failed := 0, 0
	for _, persona := range personas {
		fmt.Printf("%s[persona: %s]%s ", colorCyan, persona, colorReset)

		saved, err := critiqueSvc.Critique(ctx, "check", testArgument, persona)
		if err != nil {
			failed++
			reportFailure(err)
			continue
		}
		passed++
		fmt.Printf("%sOK%s fuerza=%d/10\n", colorGreen, colorReset, saved.Critique.StrengthScore())
	}

	fmt.Printf("%s[score_argument]%s ", colorCyan, colorReset)
	record, err := scoreSvc.ScoreArgument(ctx, "check", testArgument, domain.SourceCritique)
	if err != nil {
		failed++
		reportFailure(err)
	} else {
		passed++
		fmt.Printf("%sOK%s total=%d (C%d L%d E%d D%d)\n", colorGreen, colorReset,
			record.TotalScore, record.ClarityScore, record.LogicScore,
			record.EvidenceScore, record.DefenseScore)
	}

	fmt.Printf("%s[coach]%s ", colorCyan, colorReset)
	coach, err := coachSvc.Coach(ctx, testArgument)
	if err != nil {
		failed++
		reportFailure(err)
	} else {
		passed++
		fmt.Printf("%sOK%s contraargumentos=%d\n", colorGreen, colorReset, len(coach.Counterarguments))
	}

	fmt.Printf("%s[autopsy]%s ", colorCyan, colorReset)
	analysis, err := autopsySvc.Analyze(ctx, testArgument)
	if err != nil {
		failed++
		reportFailure(err)
	} else {
		passed++
		fmt.Printf("%sOK%s oraciones=%d relleno=%d%%\n", colorGreen, colorReset,
			len(analysis.Sentences), analysis.HealthSummary.FillerPercentage)
	}

	fmt.Println("\n==== Resumen ====")
	fmt.Printf("OK: %d | Fallas: %d\n", passed, failed)
	if failed > 0 {
		log.Fatal("hay respuestas del oraculo que no cumplen el contrato")
	}
}

func reportFailure(err error) {
	switch {
	case errors.Is(err, service.ErrInvalidOracleResponse):
		fmt.Printf("%sFALLA%s respuesta fuera de contrato: %v\n", colorRed, colorReset, err)
	case errors.Is(err, llm.ErrRateLimited):
		fmt.Printf("%sFALLA%s rate limit del gateway\n", colorRed, colorReset)
	case errors.Is(err, llm.ErrQuotaExhausted):
		fmt.Printf("%sFALLA%s cuota del gateway agotada\n", colorRed, colorReset)
	default:
		fmt.Printf("%sFALLA%s %v\n", colorRed, colorReset, err)
	}
}
