package domain

import "strings"

// BehavioralLoop es el embudo de cinco etapas que calcula el sistema upstream.
type BehavioralLoop string

const (
	LoopDiscovery  BehavioralLoop = "Discovery"
	LoopEngagement BehavioralLoop = "Engagement"
	LoopConversion BehavioralLoop = "Conversion"
	LoopRetention  BehavioralLoop = "Retention"
	LoopAdvocacy   BehavioralLoop = "Advocacy"
)

var behavioralLoops = []BehavioralLoop{LoopDiscovery, LoopEngagement, LoopConversion, LoopRetention, LoopAdvocacy}

// ParseBehavioralLoop acepta el nombre de la etapa sin distinguir mayusculas.
func ParseBehavioralLoop(s string) (BehavioralLoop, bool) {
	for _, l := range behavioralLoops {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l, true
		}
	}
	return "", false
}

type BrandResonance string

const (
	ResonanceAwareness     BrandResonance = "Awareness"
	ResonanceConsideration BrandResonance = "Consideration"
	ResonancePreference    BrandResonance = "Preference"
	ResonancePurchase      BrandResonance = "Purchase"
	ResonanceLoyalty       BrandResonance = "Loyalty"
)

var brandResonances = []BrandResonance{ResonanceAwareness, ResonanceConsideration, ResonancePreference, ResonancePurchase, ResonanceLoyalty}

func ParseBrandResonance(s string) (BrandResonance, bool) {
	for _, r := range brandResonances {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, true
		}
	}
	return "", false
}

// DecisionStage sigue el modelo clasico de decision de compra.
type DecisionStage string

const (
	DecisionProblemRecognition DecisionStage = "Problem Recognition"
	DecisionInformationSearch  DecisionStage = "Information Search"
	DecisionEvaluation         DecisionStage = "Evaluation"
	DecisionPurchase           DecisionStage = "Purchase Decision"
	DecisionPostPurchase       DecisionStage = "Post-Purchase"
)

var decisionStages = []DecisionStage{DecisionProblemRecognition, DecisionInformationSearch, DecisionEvaluation, DecisionPurchase, DecisionPostPurchase}

func ParseDecisionStage(s string) (DecisionStage, bool) {
	for _, d := range decisionStages {
		if strings.EqualFold(strings.TrimSpace(s), string(d)) {
			return d, true
		}
	}
	return "", false
}

// Level se usa para trustLevel y priceSensitivity. Vacio significa ausente.
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
)

func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return LevelLow, true
	case "moderate":
		return LevelModerate, true
	case "high":
		return LevelHigh, true
	default:
		return "", false
	}
}

type PsychographicProfile struct {
	BehavioralLoop    string   `json:"behavioralLoop"`
	BrandResonance    string   `json:"brandResonance"`
	DecisionStage     string   `json:"decisionStage"`
	TrustLevel        string   `json:"trustLevel,omitempty"`
	PriceSensitivity  string   `json:"priceSensitivity,omitempty"`
	ValueOrientation  string   `json:"valueOrientation,omitempty"`
	IdentifiedSignals []string `json:"identifiedSignals,omitempty"`
}

// HasSignal busca una señal identificada sin distinguir mayusculas.
func (p PsychographicProfile) HasSignal(signal string) bool {
	for _, s := range p.IdentifiedSignals {
		if strings.EqualFold(strings.TrimSpace(s), signal) {
			return true
		}
	}
	return false
}

type MarketingOptimizations struct {
	RetentionRisk         *float64  `json:"retentionRisk,omitempty"` // 0..1
	ContentPreferences    []string  `json:"contentPreferences"`
	SuggestedPricePoints  []float64 `json:"suggestedPricePoints"`
	LifetimeValueEstimate float64   `json:"lifetimeValueEstimate"`
	RecommendedApproach   string    `json:"recommendedApproach"`
	MessagingTone         string    `json:"messagingTone"`
	NextBestAction        string    `json:"nextBestAction,omitempty"`
}

// HasContentPreference busca una etiqueta de contenido sin distinguir mayusculas.
func (m MarketingOptimizations) HasContentPreference(tag string) bool {
	for _, c := range m.ContentPreferences {
		if strings.EqualFold(strings.TrimSpace(c), tag) {
			return true
		}
	}
	return false
}

// EnhancedBehavioralProfile es el perfil enriquecido que produce el sistema upstream.
type EnhancedBehavioralProfile struct {
	UserID                 string                 `json:"userId"`
	PsychographicProfile   PsychographicProfile   `json:"psychographicProfile"`
	MarketingOptimizations MarketingOptimizations `json:"marketingOptimizations"`
}
