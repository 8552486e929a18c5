package domain

import "time"

// Personas disponibles para la critica. Valores fuera de la lista caen a PersonaFree.
const (
	PersonaDemo        = "demo"
	PersonaFree        = "free"
	PersonaProGeneral  = "pro_general"
	PersonaProBusiness = "pro_business"
)

// ValidPersona indica si persona pertenece al catalogo.
func ValidPersona(persona string) bool {
	switch persona {
	case PersonaDemo, PersonaFree, PersonaProGeneral, PersonaProBusiness:
		return true
	}
	return false
}

// Los tipos de respuesta del oraculo conservan las claves camelCase del wire
// format del gateway; no se renombran al persistir.

// DemoCritique es la forma de respuesta de la persona demo.
type DemoCritique struct {
	CoreClaimUnderFire    string   `json:"coreClaimUnderFire"`
	ObviousWeaknesses     []string `json:"obviousWeaknesses"`
	WhatWouldBreakThis    []string `json:"whatWouldBreakThis"`
	ArgumentStrengthScore int      `json:"argumentStrengthScore"`
	ClosingStatement      string   `json:"closingStatement"`
}

// FreeCritique es la forma de respuesta de la persona free.
type FreeCritique struct {
	PrimaryObjection      string   `json:"primaryObjection"`
	LogicalFlaws          []string `json:"logicalFlaws"`
	WeakAssumptions       []string `json:"weakAssumptions"`
	Counterarguments      []string `json:"counterarguments"`
	RealWorldFailures     []string `json:"realWorldFailures"`
	ArgumentStrengthScore int      `json:"argumentStrengthScore"`
	ClosingStatement      string   `json:"closingStatement"`
}

// ProGeneralCritique es la forma de respuesta de la persona pro_general.
type ProGeneralCritique struct {
	ClaimViability        string   `json:"claimViability"`
	PrimaryObjection      string   `json:"primaryObjection"`
	MethodologicalFlaws   []string `json:"methodologicalFlaws"`
	LogicalFlaws          []string `json:"logicalFlaws"`
	HiddenAssumptions     []string `json:"hiddenAssumptions"`
	WeakAssumptions       []string `json:"weakAssumptions"`
	Counterarguments      []string `json:"counterarguments"`
	RealWorldFailures     []string `json:"realWorldFailures"`
	ArgumentStrengthScore int      `json:"argumentStrengthScore"`
	ClosingStatement      string   `json:"closingStatement"`
}

// ProBusinessCritique es la forma de respuesta de la persona pro_business.
type ProBusinessCritique struct {
	ClaimSummary            string   `json:"claimSummary"`
	PrimaryObjection        string   `json:"primaryObjection"`
	MarketRealityCheck      []string `json:"marketRealityCheck"`
	DifferentiationProblems []string `json:"differentiationProblems"`
	ExecutionRisks          []string `json:"executionRisks"`
	WhyThisFails            []string `json:"whyThisFails"`
	LogicalFlaws            []string `json:"logicalFlaws"`
	WeakAssumptions         []string `json:"weakAssumptions"`
	Counterarguments        []string `json:"counterarguments"`
	RealWorldFailures       []string `json:"realWorldFailures"`
	ArgumentStrengthScore   int      `json:"argumentStrengthScore"`
	ClosingStatement        string   `json:"closingStatement"`
}

// CritiqueResult es la union etiquetada por persona: exactamente uno de los
// punteros viene poblado segun Persona.
type CritiqueResult struct {
	Persona     string               `json:"persona"`
	Demo        *DemoCritique        `json:"demo,omitempty"`
	Free        *FreeCritique        `json:"free,omitempty"`
	ProGeneral  *ProGeneralCritique  `json:"pro_general,omitempty"`
	ProBusiness *ProBusinessCritique `json:"pro_business,omitempty"`
}

// StrengthScore devuelve el argumentStrengthScore de la variante activa.
func (c CritiqueResult) StrengthScore() int {
	switch {
	case c.Demo != nil:
		return c.Demo.ArgumentStrengthScore
	case c.Free != nil:
		return c.Free.ArgumentStrengthScore
	case c.ProGeneral != nil:
		return c.ProGeneral.ArgumentStrengthScore
	case c.ProBusiness != nil:
		return c.ProBusiness.ArgumentStrengthScore
	}
	return 0
}

// SavedCritique es una critica persistida en el historial del usuario.
type SavedCritique struct {
	ID        string         `json:"id"`
	InputText string         `json:"input_text"`
	Critique  CritiqueResult `json:"critique"`
	Persona   string         `json:"persona"`
	CreatedAt time.Time      `json:"created_at"`
}

// Counterargument es un contraargumento del coach desde una perspectiva.
type Counterargument struct {
	Perspective   string `json:"perspective"` // logical | ethical | practical
	Title         string `json:"title"`
	Argument      string `json:"argument"`
	WhyPersuasive string `json:"whyPersuasive"`
	AttacksWhat   string `json:"attacksWhat"`
}

// RebuttalCoach guia la defensa sin escribir la replica.
type RebuttalCoach struct {
	ClaimToDefend    string   `json:"claimToDefend"`
	MissingEvidence  []string `json:"missingEvidence"`
	SentenceStarters []string `json:"sentenceStarters"`
	StrategyTip      string   `json:"strategyTip"`
}

// CoachResult es la respuesta completa del counterargument coach.
type CoachResult struct {
	Counterarguments []Counterargument `json:"counterarguments"`
	RebuttalCoach    RebuttalCoach     `json:"rebuttonCoach"` // clave heredada del wire format
}

// AnalyzedSentence clasifica una oracion del autopsy.
type AnalyzedSentence struct {
	Text        string `json:"text"`
	Category    string `json:"category"` // claim | reasoning | evidence | impact | filler
	Explanation string `json:"explanation"`
}

// HealthSummary resume la salud estructural del argumento.
type HealthSummary struct {
	AnalysisPercentage    int              `json:"analysisPercentage"`
	FillerPercentage      int              `json:"fillerPercentage"`
	MissingComponents     []string         `json:"missingComponents"`
	ArgumentStrengthScore int              `json:"argumentStrengthScore"`
	Breakdown             HealthBreakdown `json:"breakdown"`
}

// HealthBreakdown cuenta oraciones por categoria.
type HealthBreakdown struct {
	Claims    int `json:"claims"`
	Reasoning int `json:"reasoning"`
	Evidence  int `json:"evidence"`
	Impact    int `json:"impact"`
	Filler    int `json:"filler"`
}

// AutopsySuggestion es una sugerencia accionable del autopsy.
type AutopsySuggestion struct {
	Type           string `json:"type"`
	Text           string `json:"text"`
	TargetSentence *int   `json:"targetSentence"`
}

// ArgumentAnalysis es la respuesta completa del argument autopsy.
type ArgumentAnalysis struct {
	Sentences     []AnalyzedSentence  `json:"sentences"`
	HealthSummary HealthSummary       `json:"healthSummary"`
	Suggestions   []AutopsySuggestion `json:"suggestions"`
}
