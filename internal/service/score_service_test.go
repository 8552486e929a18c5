package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"critiquelab/internal/domain"
	"critiquelab/internal/kv"
	"critiquelab/internal/llm"
	"critiquelab/internal/store"
)

const scoreArgsJSON = `{
	"clarity_score": 20, "logic_score": 15, "evidence_score": 17, "defense_score": 18,
	"clarity_explanation": "clear thesis", "logic_explanation": "one leap",
	"evidence_explanation": "anecdotal", "defense_explanation": "no counters addressed",
	"clarity_suggestion": "tighten the opening", "logic_suggestion": "justify the causal link",
	"evidence_suggestion": "cite a study", "defense_suggestion": "preempt the obvious objection"
}`

func TestScoreService_HappyPath(t *testing.T) {
	mock := &llm.MockClient{ToolArgs: scoreArgsJSON}
	scores := store.NewScoreStore(kv.NewMemoryStore(), nil)
	svc := NewScoreService(mock, scores, nil)

	record, err := svc.ScoreArgument(context.Background(), "u1", validArgument, domain.SourceCritique)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.TotalScore != 70 {
		t.Fatalf("expected total 70 as sum of categories, got %d", record.TotalScore)
	}
	if record.ClarityScore != 20 || record.DefenseScore != 18 {
		t.Fatalf("unexpected category scores: %+v", record)
	}
	if record.ID == "" || record.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamp assigned")
	}
	if mock.LastTool != "score_argument" {
		t.Fatalf("expected score_argument tool call, got %q", mock.LastTool)
	}

	if got := len(scores.List(context.Background(), "u1")); got != 1 {
		t.Fatalf("expected record persisted, got %d", got)
	}
}

func TestScoreService_PreviewTruncated(t *testing.T) {
	mock := &llm.MockClient{ToolArgs: scoreArgsJSON}
	svc := NewScoreService(mock, store.NewScoreStore(kv.NewMemoryStore(), nil), nil)

	long := strings.Repeat("palabra ", 100)
	record, err := svc.ScoreArgument(context.Background(), "u1", long, domain.SourceCoach)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len([]rune(record.InputPreview)); got != previewLength {
		t.Fatalf("expected preview of %d runes, got %d", previewLength, got)
	}
	if record.Source != domain.SourceCoach {
		t.Fatalf("expected source coach, got %s", record.Source)
	}
}

func TestScoreService_UnknownSourceFallsToCritique(t *testing.T) {
	mock := &llm.MockClient{ToolArgs: scoreArgsJSON}
	svc := NewScoreService(mock, store.NewScoreStore(kv.NewMemoryStore(), nil), nil)

	record, err := svc.ScoreArgument(context.Background(), "u1", validArgument, "webhook")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Source != domain.SourceCritique {
		t.Fatalf("expected fallback source critique, got %s", record.Source)
	}
}

func TestScoreService_InvalidArgsNotSaved(t *testing.T) {
	cases := []struct {
		name string
		args string
	}{
		{"not json", "sure, here are the scores"},
		{"missing fields", `{"clarity_score": 20}`},
		{"score above cap", strings.Replace(scoreArgsJSON, `"clarity_score": 20`, `"clarity_score": 30`, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			scores := store.NewScoreStore(kv.NewMemoryStore(), nil)
			svc := NewScoreService(&llm.MockClient{ToolArgs: tc.args}, scores, nil)

			_, err := svc.ScoreArgument(context.Background(), "u1", validArgument, domain.SourceCritique)
			if !errors.Is(err, ErrInvalidOracleResponse) {
				t.Fatalf("expected ErrInvalidOracleResponse, got %v", err)
			}
			if got := len(scores.List(context.Background(), "u1")); got != 0 {
				t.Fatalf("expected nothing persisted, got %d", got)
			}
		})
	}
}

func TestScoreService_QuotaErrorPropagates(t *testing.T) {
	svc := NewScoreService(&llm.MockClient{Err: llm.ErrQuotaExhausted}, store.NewScoreStore(kv.NewMemoryStore(), nil), nil)

	_, err := svc.ScoreArgument(context.Background(), "u1", validArgument, domain.SourceCritique)
	if !errors.Is(err, llm.ErrQuotaExhausted) {
		t.Fatalf("expected ErrQuotaExhausted to propagate, got %v", err)
	}
}
