package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"critiquelab/internal/config"
	"critiquelab/internal/domain"
	"critiquelab/internal/kv"
	"critiquelab/internal/llm"
	"critiquelab/internal/service"
	"critiquelab/internal/store"
)

const cliUserID = "cli"

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	kvStore := kv.NewFileStore(cfg.StorePath)
	scores := store.NewScoreStore(kvStore, logger)
	critiques := store.NewCritiqueStore(kvStore, logger)

	llmClient := llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, zap.NewStdLog(logger))
	critiqueSvc := service.NewCritiqueService(llmClient, critiques, logger)
	scoreSvc := service.NewScoreService(llmClient, scores, logger)
	coachSvc := service.NewCoachService(llmClient, logger)

	for {
		fmt.Println("\n===== CritiqueLab =====")
		fmt.Println("[1] Criticar un argumento")
		fmt.Println("[2] Puntuar un argumento")
		fmt.Println("[3] Entrenar contraargumentos")
		fmt.Println("[4] Ver progreso")
		fmt.Println("[5] Ver historial de puntuaciones")
		fmt.Println("[6] Salir")
		fmt.Print("Selecciona una opcion: ")

		line, _ := reader.ReadString('\n')
		switch strings.TrimSpace(line) {
		case "1":
			if err := critiqueFlow(ctx, reader, critiqueSvc); err != nil {
				fmt.Printf("Error generando critica: %v\n", err)
			}
		case "2":
			if err := scoreFlow(ctx, reader, scoreSvc); err != nil {
				fmt.Printf("Error puntuando: %v\n", err)
			}
		case "3":
			if err := coachFlow(ctx, reader, coachSvc); err != nil {
				fmt.Printf("Error en coaching: %v\n", err)
			}
		case "4":
			showProgress(ctx, scores)
		case "5":
			showHistory(ctx, scores)
		case "6":
			os.Exit(0)
		default:
			fmt.Println("Opcion invalida.")
		}
	}
}

func readArgument(reader *bufio.Reader) (string, error) {
	fmt.Println("Escribe tu argumento (termina con una linea vacia):")
	var b strings.Builder
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("leer input: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			break
		}
		b.WriteString(line)
	}
	return strings.TrimSpace(b.String()), nil
}

func critiqueFlow(ctx context.Context, reader *bufio.Reader, critiqueSvc *service.CritiqueService) error {
	text, err := readArgument(reader)
	if err != nil {
		return err
	}

	fmt.Printf("Persona [%s/%s/%s/%s] (default %s): ",
		domain.PersonaDemo, domain.PersonaFree, domain.PersonaProGeneral, domain.PersonaProBusiness, domain.PersonaFree)
	persona, _ := reader.ReadString('\n')

	fmt.Println("Generando critica. Por favor, espere...")
	saved, err := critiqueSvc.Critique(ctx, cliUserID, text, strings.TrimSpace(persona))
	if err != nil {
		return err
	}

	printCritique(saved.Critique)
	return nil
}

func printCritique(result domain.CritiqueResult) {
	fmt.Printf("\nFuerza del argumento: %d/10\n", result.StrengthScore())

	switch result.Persona {
	case domain.PersonaDemo:
		fmt.Printf("Afirmacion bajo fuego: %s\n", result.Demo.CoreClaimUnderFire)
		printList("Debilidades obvias", result.Demo.ObviousWeaknesses)
		printList("Que lo romperia", result.Demo.WhatWouldBreakThis)
		fmt.Printf("Cierre: %s\n", result.Demo.ClosingStatement)
	case domain.PersonaFree:
		fmt.Printf("Objecion principal: %s\n", result.Free.PrimaryObjection)
		printList("Fallas logicas", result.Free.LogicalFlaws)
		printList("Supuestos debiles", result.Free.WeakAssumptions)
		printList("Contraargumentos", result.Free.Counterarguments)
		printList("Fallas en el mundo real", result.Free.RealWorldFailures)
		fmt.Printf("Cierre: %s\n", result.Free.ClosingStatement)
	case domain.PersonaProGeneral:
		fmt.Printf("Viabilidad: %s\n", result.ProGeneral.ClaimViability)
		fmt.Printf("Objecion principal: %s\n", result.ProGeneral.PrimaryObjection)
		printList("Fallas metodologicas", result.ProGeneral.MethodologicalFlaws)
		printList("Fallas logicas", result.ProGeneral.LogicalFlaws)
		printList("Supuestos ocultos", result.ProGeneral.HiddenAssumptions)
		printList("Contraargumentos", result.ProGeneral.Counterarguments)
		fmt.Printf("Cierre: %s\n", result.ProGeneral.ClosingStatement)
	case domain.PersonaProBusiness:
		fmt.Printf("Resumen: %s\n", result.ProBusiness.ClaimSummary)
		fmt.Printf("Objecion principal: %s\n", result.ProBusiness.PrimaryObjection)
		printList("Realidad del mercado", result.ProBusiness.MarketRealityCheck)
		printList("Problemas de diferenciacion", result.ProBusiness.DifferentiationProblems)
		printList("Riesgos de ejecucion", result.ProBusiness.ExecutionRisks)
		printList("Por que falla", result.ProBusiness.WhyThisFails)
		fmt.Printf("Cierre: %s\n", result.ProBusiness.ClosingStatement)
	}
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}

func scoreFlow(ctx context.Context, reader *bufio.Reader, scoreSvc *service.ScoreService) error {
	text, err := readArgument(reader)
	if err != nil {
		return err
	}

	fmt.Println("Puntuando. Por favor, espere...")
	record, err := scoreSvc.ScoreArgument(ctx, cliUserID, text, domain.SourceCritique)
	if err != nil {
		return err
	}

	fmt.Printf("\nTotal: %d/100\n", record.TotalScore)
	fmt.Printf("  Claridad:  %d/25\n", record.ClarityScore)
	fmt.Printf("  Logica:    %d/25\n", record.LogicScore)
	fmt.Printf("  Evidencia: %d/25\n", record.EvidenceScore)
	fmt.Printf("  Defensa:   %d/25\n", record.DefenseScore)
	return nil
}

func coachFlow(ctx context.Context, reader *bufio.Reader, coachSvc *service.CoachService) error {
	text, err := readArgument(reader)
	if err != nil {
		return err
	}

	fmt.Println("Generando contraargumentos. Por favor, espere...")
	result, err := coachSvc.Coach(ctx, text)
	if err != nil {
		return err
	}

	for i, counter := range result.Counterarguments {
		fmt.Printf("\n[%d] (%s) %s\n", i+1, counter.Perspective, counter.Title)
		fmt.Printf("    %s\n", counter.Argument)
		fmt.Printf("    Ataca: %s\n", counter.AttacksWhat)
	}

	coach := result.RebuttalCoach
	fmt.Printf("\nAfirmacion a defender: %s\n", coach.ClaimToDefend)
	printList("Evidencia faltante", coach.MissingEvidence)
	printList("Arranques de oracion", coach.SentenceStarters)
	fmt.Printf("Estrategia: %s\n", coach.StrategyTip)
	return nil
}

func showProgress(ctx context.Context, scores *store.ScoreStore) {
	records := scores.List(ctx, cliUserID)

	rating := service.RatingEngine{}.Compute(records)
	fmt.Printf("\nRating: %d (%s, percentil %d)\n", rating.Rating, rating.Tier, rating.Percentile)

	streak := service.StreakTracker{}.Compute(records)
	fmt.Printf("Racha actual: %d dias (mejor: %d)\n", streak.CurrentStreak, streak.LongestStreak)

	weakness := service.WeaknessAnalyzer{}.Compute(records)
	fmt.Printf("Categoria mas debil: %s\n", weakness.Weakest)
	for _, trend := range weakness.Trend {
		fmt.Printf("  %s: %s\n", trend.Category, trend.Direction)
	}

	achievements := service.AchievementEvaluator{}.Compute(records)
	unlocked := 0
	for _, a := range achievements {
		if a.Unlocked {
			unlocked++
			fmt.Printf("  %s %s: %s\n", a.Icon, a.Name, a.Description)
		}
	}
	fmt.Printf("Logros desbloqueados: %d/%d\n", unlocked, len(achievements))
}

func showHistory(ctx context.Context, scores *store.ScoreStore) {
	records := scores.List(ctx, cliUserID)
	if len(records) == 0 {
		fmt.Println("\nSin puntuaciones todavia.")
		return
	}

	fmt.Printf("\nPromedio: %d | Mejor: %d\n", scores.AverageScore(ctx, cliUserID), scores.HighestScore(ctx, cliUserID))
	for _, r := range records {
		preview := r.InputPreview
		if runes := []rune(preview); len(runes) > 60 {
			preview = string(runes[:60]) + "..."
		}
		fmt.Printf("%s  %3d (C%d L%d E%d D%d)  %s\n",
			r.CreatedAt.Format("2006-01-02"), r.TotalScore,
			r.ClarityScore, r.LogicScore, r.EvidenceScore, r.DefenseScore, preview)
	}
}
