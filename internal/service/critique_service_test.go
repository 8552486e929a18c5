package service

import (
	"context"
	"errors"
	"testing"

	"critiquelab/internal/domain"
	"critiquelab/internal/kv"
	"critiquelab/internal/llm"
	"critiquelab/internal/store"
)

const validArgument = "La educacion publica gratuita mejora la movilidad social a largo plazo."

const demoCritiqueJSON = `{
	"coreClaimUnderFire": "free public education improves mobility",
	"obviousWeaknesses": ["no data cited"],
	"whatWouldBreakThis": ["counterexamples from other countries"],
	"argumentStrengthScore": 5,
	"closingStatement": "plausible but unsupported"
}`

func TestCritiqueService_HappyPath(t *testing.T) {
	mock := &llm.MockClient{Response: demoCritiqueJSON}
	critiques := store.NewCritiqueStore(kv.NewMemoryStore(), nil)
	svc := NewCritiqueService(mock, critiques, nil)

	saved, err := svc.Critique(context.Background(), "u1", validArgument, domain.PersonaDemo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved.Persona != domain.PersonaDemo || saved.Critique.Demo == nil {
		t.Fatalf("expected demo variant populated, got %+v", saved)
	}
	if saved.Critique.StrengthScore() != 5 {
		t.Fatalf("expected strength 5, got %d", saved.Critique.StrengthScore())
	}
	if saved.InputText != validArgument {
		t.Fatalf("expected sanitized input persisted, got %q", saved.InputText)
	}

	if got := len(critiques.List(context.Background(), "u1")); got != 1 {
		t.Fatalf("expected critique persisted, history size %d", got)
	}
}

func TestCritiqueService_FencedResponse(t *testing.T) {
	mock := &llm.MockClient{Response: "Here you go:\n```json\n" + demoCritiqueJSON + "\n```"}
	svc := NewCritiqueService(mock, store.NewCritiqueStore(kv.NewMemoryStore(), nil), nil)

	saved, err := svc.Critique(context.Background(), "u1", validArgument, domain.PersonaDemo)
	if err != nil {
		t.Fatalf("expected fenced response to parse, got %v", err)
	}
	if saved.Critique.Demo == nil {
		t.Fatalf("expected demo variant populated")
	}
}

func TestCritiqueService_UnknownPersonaFallsToFree(t *testing.T) {
	freeJSON := `{
		"primaryObjection": "x",
		"logicalFlaws": [], "weakAssumptions": [],
		"counterarguments": [], "realWorldFailures": [],
		"argumentStrengthScore": 6
	}`
	mock := &llm.MockClient{Response: freeJSON}
	svc := NewCritiqueService(mock, store.NewCritiqueStore(kv.NewMemoryStore(), nil), nil)

	saved, err := svc.Critique(context.Background(), "u1", validArgument, "superadmin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Persona != domain.PersonaFree || saved.Critique.Free == nil {
		t.Fatalf("expected fallback to free persona, got %+v", saved)
	}
}

func TestCritiqueService_InvalidResponseNotSaved(t *testing.T) {
	mock := &llm.MockClient{Response: `{"wrong": "shape"}`}
	critiques := store.NewCritiqueStore(kv.NewMemoryStore(), nil)
	svc := NewCritiqueService(mock, critiques, nil)

	_, err := svc.Critique(context.Background(), "u1", validArgument, domain.PersonaDemo)
	if !errors.Is(err, ErrInvalidOracleResponse) {
		t.Fatalf("expected ErrInvalidOracleResponse, got %v", err)
	}
	if got := len(critiques.List(context.Background(), "u1")); got != 0 {
		t.Fatalf("expected nothing persisted on invalid response, got %d", got)
	}
}

func TestCritiqueService_ValidationShortCircuits(t *testing.T) {
	mock := &llm.MockClient{Response: demoCritiqueJSON}
	svc := NewCritiqueService(mock, store.NewCritiqueStore(kv.NewMemoryStore(), nil), nil)

	_, err := svc.Critique(context.Background(), "u1", "corto", domain.PersonaDemo)
	if !errors.Is(err, ErrTextTooShort) {
		t.Fatalf("expected ErrTextTooShort, got %v", err)
	}
	if mock.LastUser != "" {
		t.Fatalf("expected oracle not to be called on invalid input")
	}
}

func TestCritiqueService_GatewayErrorPropagates(t *testing.T) {
	mock := &llm.MockClient{Err: llm.ErrRateLimited}
	svc := NewCritiqueService(mock, store.NewCritiqueStore(kv.NewMemoryStore(), nil), nil)

	_, err := svc.Critique(context.Background(), "u1", validArgument, domain.PersonaDemo)
	if !errors.Is(err, llm.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited to propagate, got %v", err)
	}
}
