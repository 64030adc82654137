package service

import "behavior-insights/internal/domain"

const desireThresholdForCommitment = 70

// Plantillas fijas de lenguaje por tecnica.
const (
	interrogationPattern = "What would it mean to you if you could finally find exactly what you have been looking for?"
	reciprocityPattern   = "I put together something special just for you, because you have been so open with me."
	scarcityPattern      = "This is only available to a handful of people right now, and I thought of you first."
	commitmentPattern    = "You already told me this matters to you, so this next step is simply following through."
	likeabilityPattern   = "It means a lot that you keep coming back. You are honestly one of my favorite people to talk to."
	visualPattern        = "Picture how this will look once you see it for yourself."
	auditoryPattern      = "Listen to how this sounds and tell me if it resonates with you."
	kinestheticPattern   = "Imagine how it will feel once you get your hands on it."
)

var visualCues = []string{"bright imagery", "color-rich previews", "before and after visuals"}

var audioElements = []string{"personal voice notes", "ambient soundscape", "spoken greeting"}

// ApproachInput reune lo que necesita la tabla de decision.
type ApproachInput struct {
	PrimarySensory domain.SensoryPreference
	Phase          domain.InfluencePhase
	Techniques     []domain.Technique
	TrustScore     int
	DesireScore    int
}

// RecommendApproach recorre la tabla de decision en orden; gana la primera regla que se cumple.
func RecommendApproach(in ApproachInput) domain.SuggestedApproach {
	switch {
	case in.Phase == domain.PhaseInterest && hasTechnique(in.Techniques, domain.TechniqueInterrogationEncapsulation):
		return domain.SuggestedApproach{Technique: domain.TechniqueInterrogationEncapsulation, LanguagePattern: interrogationPattern}
	case in.Phase == domain.PhaseTrust && hasTechnique(in.Techniques, domain.TechniqueReciprocityTrigger):
		// Solo alcanzable desde el perfil enriquecido: la deteccion de señales crudas no emite reciprocity_trigger.
		return domain.SuggestedApproach{Technique: domain.TechniqueReciprocityTrigger, LanguagePattern: reciprocityPattern}
	case in.Phase == domain.PhaseDesire && hasTechnique(in.Techniques, domain.TechniqueScarcityFraming):
		return domain.SuggestedApproach{Technique: domain.TechniqueScarcityFraming, LanguagePattern: scarcityPattern}
	case in.Phase == domain.PhaseAction && in.DesireScore > desireThresholdForCommitment:
		return domain.SuggestedApproach{Technique: domain.TechniqueCommitmentConsistency, LanguagePattern: commitmentPattern}
	case in.Phase == domain.PhaseLoyalty:
		return domain.SuggestedApproach{Technique: domain.TechniqueLikeabilityEnhancement, LanguagePattern: likeabilityPattern}
	}
	return sensoryFallback(in.PrimarySensory)
}

func sensoryFallback(pref domain.SensoryPreference) domain.SuggestedApproach {
	approach := domain.SuggestedApproach{Technique: domain.TechniqueBTEMapping}
	switch pref {
	case domain.SensoryVisual:
		approach.LanguagePattern = visualPattern
		approach.VisualCues = append([]string(nil), visualCues...)
	case domain.SensoryAuditory:
		approach.LanguagePattern = auditoryPattern
		approach.AudioElements = append([]string(nil), audioElements...)
	default:
		approach.LanguagePattern = kinestheticPattern
	}
	return approach
}
