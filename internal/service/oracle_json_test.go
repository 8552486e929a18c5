package service

import (
	"errors"
	"testing"

	"critiquelab/internal/domain"
)

func TestCleanOracleJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain json untouched", `{"a":1}`, `{"a":1}`},
		{"strips json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"strips bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"strips bom", "\uFEFF{\"a\":1}", `{"a":1}`},
		{"empty input", "   ", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cleanOracleJSON(tc.in); got != tc.want {
				t.Fatalf("cleanOracleJSON(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestExtractFirstJSONObject(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"prose prefix", `Here is the result: {"a":1} hope it helps`, `{"a":1}`},
		{"nested objects", `{"a":{"b":2}}`, `{"a":{"b":2}}`},
		{"braces inside strings", `{"a":"}{"}`, `{"a":"}{"}`},
		{"escaped quotes", `{"a":"say \"hi\""}`, `{"a":"say \"hi\""}`},
		{"no object", "nothing here", ""},
		{"unbalanced", `{"a":1`, ""},
		{"first of several", `{"a":1}{"b":2}`, `{"a":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractFirstJSONObject(tc.in); got != tc.want {
				t.Fatalf("extractFirstJSONObject(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestValidateOracleJSON_Demo(t *testing.T) {
	raw := `{
		"coreClaimUnderFire": "remote work is always better",
		"obviousWeaknesses": ["no evidence"],
		"whatWouldBreakThis": ["a single counterexample"],
		"argumentStrengthScore": 4,
		"closingStatement": "needs work"
	}`

	var out domain.DemoCritique
	if err := validateOracleJSON(raw, demoCritiqueSchema, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ArgumentStrengthScore != 4 || len(out.ObviousWeaknesses) != 1 {
		t.Fatalf("unexpected decode: %+v", out)
	}
}

func TestValidateOracleJSON_FailClosed(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not json", "hola"},
		{"missing required", `{"coreClaimUnderFire": "x"}`},
		{"score out of range", `{
			"coreClaimUnderFire": "x",
			"obviousWeaknesses": [],
			"whatWouldBreakThis": [],
			"argumentStrengthScore": 99
		}`},
		{"wrong type", `{
			"coreClaimUnderFire": "x",
			"obviousWeaknesses": "not an array",
			"whatWouldBreakThis": [],
			"argumentStrengthScore": 5
		}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out domain.DemoCritique
			err := validateOracleJSON(tc.raw, demoCritiqueSchema, &out)
			if !errors.Is(err, ErrInvalidOracleResponse) {
				t.Fatalf("expected ErrInvalidOracleResponse, got %v", err)
			}
		})
	}
}

func TestValidateOracleJSON_ScoreArgument(t *testing.T) {
	raw := `{
		"clarity_score": 20, "logic_score": 15, "evidence_score": 17, "defense_score": 18,
		"clarity_explanation": "a", "logic_explanation": "b",
		"evidence_explanation": "c", "defense_explanation": "d",
		"clarity_suggestion": "e", "logic_suggestion": "f",
		"evidence_suggestion": "g", "defense_suggestion": "h"
	}`

	var out scoreArgumentArgs
	if err := validateOracleJSON(raw, scoreArgumentSchema, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ClarityScore != 20 || out.DefenseScore != 18 {
		t.Fatalf("unexpected decode: %+v", out)
	}

	// Campos extra violan additionalProperties.
	withExtra := `{
		"clarity_score": 20, "logic_score": 15, "evidence_score": 17, "defense_score": 18,
		"clarity_explanation": "a", "logic_explanation": "b",
		"evidence_explanation": "c", "defense_explanation": "d",
		"clarity_suggestion": "e", "logic_suggestion": "f",
		"evidence_suggestion": "g", "defense_suggestion": "h",
		"bonus": true
	}`
	if err := validateOracleJSON(withExtra, scoreArgumentSchema, &out); !errors.Is(err, ErrInvalidOracleResponse) {
		t.Fatalf("expected extra property to be rejected, got %v", err)
	}
}
