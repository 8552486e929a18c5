package store

import (
	"context"
	"testing"

	"critiquelab/internal/domain"
	"critiquelab/internal/kv"
)

func demoResult(score int) domain.CritiqueResult {
	return domain.CritiqueResult{
		Persona: domain.PersonaDemo,
		Demo: &domain.DemoCritique{
			CoreClaimUnderFire:    "claim",
			ArgumentStrengthScore: score,
		},
	}
}

func TestCritiqueStore_AddGetList(t *testing.T) {
	ctx := context.Background()
	s := NewCritiqueStore(kv.NewMemoryStore(), nil)

	first := s.Add(ctx, "u1", "texto uno", demoResult(4))
	second := s.Add(ctx, "u1", "texto dos", demoResult(7))

	if first.ID == "" || first.Persona != domain.PersonaDemo {
		t.Fatalf("unexpected saved critique: %+v", first)
	}

	list := s.List(ctx, "u1")
	if len(list) != 2 || list[0].ID != second.ID {
		t.Fatalf("expected newest-first list of 2, got %+v", list)
	}

	got, ok := s.Get(ctx, "u1", first.ID)
	if !ok || got.InputText != "texto uno" {
		t.Fatalf("expected to find critique by id, got %+v ok=%v", got, ok)
	}

	if _, ok := s.Get(ctx, "u1", "missing"); ok {
		t.Fatalf("expected missing id to report not found")
	}
}

func TestCritiqueStore_Truncation(t *testing.T) {
	ctx := context.Background()
	s := NewCritiqueStore(kv.NewMemoryStore(), nil)

	oldest := s.Add(ctx, "u1", "viejo", demoResult(1))
	for i := 0; i < MaxCritiques; i++ {
		s.Add(ctx, "u1", "relleno", demoResult(5))
	}

	list := s.List(ctx, "u1")
	if len(list) != MaxCritiques {
		t.Fatalf("expected history bounded at %d, got %d", MaxCritiques, len(list))
	}
	if _, ok := s.Get(ctx, "u1", oldest.ID); ok {
		t.Fatalf("expected oldest critique to be dropped")
	}
}

func TestCritiqueStore_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	s := NewCritiqueStore(kv.NewMemoryStore(), nil)

	keep := s.Add(ctx, "u1", "a", demoResult(3))
	drop := s.Add(ctx, "u1", "b", demoResult(6))

	s.Delete(ctx, "u1", drop.ID)
	if list := s.List(ctx, "u1"); len(list) != 1 || list[0].ID != keep.ID {
		t.Fatalf("expected only %s to remain, got %+v", keep.ID, list)
	}

	s.Clear(ctx, "u1")
	if got := len(s.List(ctx, "u1")); got != 0 {
		t.Fatalf("expected empty history after clear, got %d", got)
	}
}

func TestCritiqueStore_Persistence(t *testing.T) {
	ctx := context.Background()
	shared := kv.NewMemoryStore()

	s := NewCritiqueStore(shared, nil)
	added := s.Add(ctx, "u1", "texto", demoResult(8))

	reopened := NewCritiqueStore(shared, nil)
	got, ok := reopened.Get(ctx, "u1", added.ID)
	if !ok {
		t.Fatalf("expected critique to survive rehydration")
	}
	if got.Critique.Demo == nil || got.Critique.Demo.ArgumentStrengthScore != 8 {
		t.Fatalf("unexpected rehydrated critique: %+v", got)
	}
}
