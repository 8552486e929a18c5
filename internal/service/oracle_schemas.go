package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidOracleResponse marca una respuesta del oraculo que no cumple el
// esquema esperado. Se falla cerrado: nunca se guarda un record parcial.
var ErrInvalidOracleResponse = errors.New("invalid oracle response")

// Esquemas de las respuestas del oraculo, uno por forma de persona mas el
// tool score_argument, el coach y el autopsy.
const (
	demoCritiqueSchemaJSON = `{
  "type": "object",
  "properties": {
    "coreClaimUnderFire": {"type": "string"},
    "obviousWeaknesses": {"type": "array", "items": {"type": "string"}},
    "whatWouldBreakThis": {"type": "array", "items": {"type": "string"}},
    "argumentStrengthScore": {"type": "integer", "minimum": 1, "maximum": 10},
    "closingStatement": {"type": "string"}
  },
  "required": ["coreClaimUnderFire", "obviousWeaknesses", "whatWouldBreakThis", "argumentStrengthScore"]
}`

	freeCritiqueSchemaJSON = `{
  "type": "object",
  "properties": {
    "primaryObjection": {"type": "string"},
    "logicalFlaws": {"type": "array", "items": {"type": "string"}},
    "weakAssumptions": {"type": "array", "items": {"type": "string"}},
    "counterarguments": {"type": "array", "items": {"type": "string"}},
    "realWorldFailures": {"type": "array", "items": {"type": "string"}},
    "argumentStrengthScore": {"type": "integer", "minimum": 1, "maximum": 10},
    "closingStatement": {"type": "string"}
  },
  "required": ["primaryObjection", "logicalFlaws", "weakAssumptions", "counterarguments", "realWorldFailures", "argumentStrengthScore"]
}`

	proGeneralCritiqueSchemaJSON = `{
  "type": "object",
  "properties": {
    "claimViability": {"type": "string"},
    "primaryObjection": {"type": "string"},
    "methodologicalFlaws": {"type": "array", "items": {"type": "string"}},
    "logicalFlaws": {"type": "array", "items": {"type": "string"}},
    "hiddenAssumptions": {"type": "array", "items": {"type": "string"}},
    "weakAssumptions": {"type": "array", "items": {"type": "string"}},
    "counterarguments": {"type": "array", "items": {"type": "string"}},
    "realWorldFailures": {"type": "array", "items": {"type": "string"}},
    "argumentStrengthScore": {"type": "integer", "minimum": 1, "maximum": 10},
    "closingStatement": {"type": "string"}
  },
  "required": ["claimViability", "primaryObjection", "methodologicalFlaws", "hiddenAssumptions", "argumentStrengthScore"]
}`

	proBusinessCritiqueSchemaJSON = `{
  "type": "object",
  "properties": {
    "claimSummary": {"type": "string"},
    "primaryObjection": {"type": "string"},
    "marketRealityCheck": {"type": "array", "items": {"type": "string"}},
    "differentiationProblems": {"type": "array", "items": {"type": "string"}},
    "executionRisks": {"type": "array", "items": {"type": "string"}},
    "whyThisFails": {"type": "array", "items": {"type": "string"}},
    "logicalFlaws": {"type": "array", "items": {"type": "string"}},
    "weakAssumptions": {"type": "array", "items": {"type": "string"}},
    "counterarguments": {"type": "array", "items": {"type": "string"}},
    "realWorldFailures": {"type": "array", "items": {"type": "string"}},
    "argumentStrengthScore": {"type": "integer", "minimum": 1, "maximum": 10},
    "closingStatement": {"type": "string"}
  },
  "required": ["claimSummary", "primaryObjection", "marketRealityCheck", "whyThisFails", "argumentStrengthScore"]
}`

	scoreArgumentSchemaJSON = `{
  "type": "object",
  "properties": {
    "clarity_score": {"type": "integer", "minimum": 0, "maximum": 25},
    "logic_score": {"type": "integer", "minimum": 0, "maximum": 25},
    "evidence_score": {"type": "integer", "minimum": 0, "maximum": 25},
    "defense_score": {"type": "integer", "minimum": 0, "maximum": 25},
    "clarity_explanation": {"type": "string"},
    "logic_explanation": {"type": "string"},
    "evidence_explanation": {"type": "string"},
    "defense_explanation": {"type": "string"},
    "clarity_suggestion": {"type": "string"},
    "logic_suggestion": {"type": "string"},
    "evidence_suggestion": {"type": "string"},
    "defense_suggestion": {"type": "string"}
  },
  "required": [
    "clarity_score", "logic_score", "evidence_score", "defense_score",
    "clarity_explanation", "logic_explanation", "evidence_explanation", "defense_explanation",
    "clarity_suggestion", "logic_suggestion", "evidence_suggestion", "defense_suggestion"
  ],
  "additionalProperties": false
}`

	coachSchemaJSON = `{
  "type": "object",
  "properties": {
    "counterarguments": {
      "type": "array",
      "minItems": 3,
      "maxItems": 3,
      "items": {
        "type": "object",
        "properties": {
          "perspective": {"enum": ["logical", "ethical", "practical"]},
          "title": {"type": "string"},
          "argument": {"type": "string"},
          "whyPersuasive": {"type": "string"},
          "attacksWhat": {"type": "string"}
        },
        "required": ["perspective", "title", "argument", "whyPersuasive", "attacksWhat"]
      }
    },
    "rebuttonCoach": {
      "type": "object",
      "properties": {
        "claimToDefend": {"type": "string"},
        "missingEvidence": {"type": "array", "items": {"type": "string"}},
        "sentenceStarters": {"type": "array", "items": {"type": "string"}},
        "strategyTip": {"type": "string"}
      },
      "required": ["claimToDefend", "missingEvidence", "sentenceStarters", "strategyTip"]
    }
  },
  "required": ["counterarguments", "rebuttonCoach"]
}`

	autopsySchemaJSON = `{
  "type": "object",
  "properties": {
    "sentences": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "text": {"type": "string"},
          "category": {"enum": ["claim", "reasoning", "evidence", "impact", "filler"]},
          "explanation": {"type": "string"}
        },
        "required": ["text", "category", "explanation"]
      }
    },
    "healthSummary": {
      "type": "object",
      "properties": {
        "analysisPercentage": {"type": "integer", "minimum": 0, "maximum": 100},
        "fillerPercentage": {"type": "integer", "minimum": 0, "maximum": 100},
        "missingComponents": {"type": "array", "items": {"type": "string"}},
        "argumentStrengthScore": {"type": "integer", "minimum": 0, "maximum": 100},
        "breakdown": {
          "type": "object",
          "properties": {
            "claims": {"type": "integer"},
            "reasoning": {"type": "integer"},
            "evidence": {"type": "integer"},
            "impact": {"type": "integer"},
            "filler": {"type": "integer"}
          },
          "required": ["claims", "reasoning", "evidence", "impact", "filler"]
        }
      },
      "required": ["analysisPercentage", "fillerPercentage", "missingComponents", "argumentStrengthScore", "breakdown"]
    },
    "suggestions": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "type": {"type": "string"},
          "text": {"type": "string"},
          "targetSentence": {"type": ["integer", "null"]}
        },
        "required": ["type", "text"]
      }
    }
  },
  "required": ["sentences", "healthSummary", "suggestions"]
}`
)

var (
	demoCritiqueSchema        *jsonschema.Schema
	freeCritiqueSchema        *jsonschema.Schema
	proGeneralCritiqueSchema  *jsonschema.Schema
	proBusinessCritiqueSchema *jsonschema.Schema
	scoreArgumentSchema       *jsonschema.Schema
	coachSchema               *jsonschema.Schema
	autopsySchema             *jsonschema.Schema
)

func init() {
	demoCritiqueSchema = mustCompileSchema(demoCritiqueSchemaJSON, "demo_critique.schema.json")
	freeCritiqueSchema = mustCompileSchema(freeCritiqueSchemaJSON, "free_critique.schema.json")
	proGeneralCritiqueSchema = mustCompileSchema(proGeneralCritiqueSchemaJSON, "pro_general_critique.schema.json")
	proBusinessCritiqueSchema = mustCompileSchema(proBusinessCritiqueSchemaJSON, "pro_business_critique.schema.json")
	scoreArgumentSchema = mustCompileSchema(scoreArgumentSchemaJSON, "score_argument.schema.json")
	coachSchema = mustCompileSchema(coachSchemaJSON, "coach.schema.json")
	autopsySchema = mustCompileSchema(autopsySchemaJSON, "autopsy.schema.json")
}

func mustCompileSchema(raw, name string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("compile %s: %v", name, err))
	}
	return sch
}

// validateOracleJSON comprueba que raw sea JSON valido conforme al esquema y
// lo decodifica en out. Cualquier violacion se reporta como
// ErrInvalidOracleResponse.
func validateOracleJSON(raw string, schema *jsonschema.Schema, out any) error {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOracleResponse, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOracleResponse, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOracleResponse, err)
	}
	return nil
}
