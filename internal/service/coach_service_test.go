package service

import (
	"context"
	"errors"
	"testing"

	"critiquelab/internal/llm"
)

const coachJSON = `{
	"counterarguments": [
		{"perspective": "logical", "title": "Hidden leap", "argument": "a", "whyPersuasive": "b", "attacksWhat": "c"},
		{"perspective": "ethical", "title": "Who pays", "argument": "a", "whyPersuasive": "b", "attacksWhat": "c"},
		{"perspective": "practical", "title": "It does not scale", "argument": "a", "whyPersuasive": "b", "attacksWhat": "c"}
	],
	"rebuttonCoach": {
		"claimToDefend": "the central claim",
		"missingEvidence": ["a controlled study"],
		"sentenceStarters": ["Even granting that..."],
		"strategyTip": "concede the weakest point first"
	}
}`

func TestCoachService_HappyPath(t *testing.T) {
	svc := NewCoachService(&llm.MockClient{Response: coachJSON}, nil)

	result, err := svc.Coach(context.Background(), validArgument)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Counterarguments) != 3 {
		t.Fatalf("expected 3 counterarguments, got %d", len(result.Counterarguments))
	}
	if result.Counterarguments[0].Perspective != "logical" {
		t.Fatalf("unexpected first perspective: %s", result.Counterarguments[0].Perspective)
	}
	if result.RebuttalCoach.StrategyTip == "" {
		t.Fatalf("expected rebuttal coach populated")
	}
}

func TestCoachService_WrongCountRejected(t *testing.T) {
	// Dos contraargumentos en vez de tres violan el esquema.
	twoOnly := `{
		"counterarguments": [
			{"perspective": "logical", "title": "a", "argument": "a", "whyPersuasive": "b", "attacksWhat": "c"},
			{"perspective": "ethical", "title": "a", "argument": "a", "whyPersuasive": "b", "attacksWhat": "c"}
		],
		"rebuttonCoach": {"claimToDefend": "x", "missingEvidence": [], "sentenceStarters": [], "strategyTip": "y"}
	}`
	svc := NewCoachService(&llm.MockClient{Response: twoOnly}, nil)

	_, err := svc.Coach(context.Background(), validArgument)
	if !errors.Is(err, ErrInvalidOracleResponse) {
		t.Fatalf("expected ErrInvalidOracleResponse, got %v", err)
	}
}

func TestCoachService_InvalidPerspectiveRejected(t *testing.T) {
	badPerspective := `{
		"counterarguments": [
			{"perspective": "emotional", "title": "a", "argument": "a", "whyPersuasive": "b", "attacksWhat": "c"},
			{"perspective": "ethical", "title": "a", "argument": "a", "whyPersuasive": "b", "attacksWhat": "c"},
			{"perspective": "practical", "title": "a", "argument": "a", "whyPersuasive": "b", "attacksWhat": "c"}
		],
		"rebuttonCoach": {"claimToDefend": "x", "missingEvidence": [], "sentenceStarters": [], "strategyTip": "y"}
	}`
	svc := NewCoachService(&llm.MockClient{Response: badPerspective}, nil)

	_, err := svc.Coach(context.Background(), validArgument)
	if !errors.Is(err, ErrInvalidOracleResponse) {
		t.Fatalf("expected ErrInvalidOracleResponse, got %v", err)
	}
}
