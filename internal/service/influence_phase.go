package service

import (
	"math"

	"behavior-insights/internal/domain"
)

var personalInfoPhrases = []string{
	"my name", "i live", "i am from", "i'm from", "i work", "my job",
	"my family", "years old",
}

var desirePhrases = []string{"want", "like to", "would love", "interested in"}

var actionElements = []string{"subscribe", "purchase", "signup", "book"}

var selfReferenceWords = []string{"i", "my", "me"}

const (
	returningVisitThreshold = 5
	deepEngagementSeconds   = 300
	actionPhaseProgress     = 50
)

// PhaseIndicators son los indicadores booleanos que deciden la fase de influencia.
type PhaseIndicators struct {
	HasSharedPersonalInfo bool `json:"hasSharedPersonalInfo"`
	HasExpressedDesire    bool `json:"hasExpressedDesire"`
	HasPerformedAction    bool `json:"hasPerformedAction"`
	HasReturningVisits    bool `json:"hasReturningVisits"`
	HasEngagedDeeply      bool `json:"hasEngagedDeeply"`
}

func ComputePhaseIndicators(userMessages []string, history domain.InteractionHistory) PhaseIndicators {
	var ind PhaseIndicators
	for _, raw := range userMessages {
		msg := normalize(raw)
		if containsAny(msg, personalInfoPhrases) {
			ind.HasSharedPersonalInfo = true
		}
		if containsAny(msg, desirePhrases) {
			ind.HasExpressedDesire = true
		}
	}
	for _, click := range history.ClickPatterns {
		if containsAny(normalize(click.Element), actionElements) {
			ind.HasPerformedAction = true
			break
		}
	}
	ind.HasReturningVisits = len(history.PageViews) > returningVisitThreshold
	for _, pv := range history.PageViews {
		if pv.TimeSpent > deepEngagementSeconds {
			ind.HasEngagedDeeply = true
			break
		}
	}
	return ind
}

// ClassifyInfluencePhase evalua de la fase mas avanzada a la menos avanzada; gana la primera.
// Se recalcula desde cero en cada llamada, asi que la fase puede retroceder.
func ClassifyInfluencePhase(ind PhaseIndicators) domain.InfluencePhase {
	switch {
	case ind.HasReturningVisits && ind.HasEngagedDeeply && ind.HasPerformedAction:
		return domain.PhaseLoyalty
	case ind.HasPerformedAction:
		return domain.PhaseAction
	case ind.HasExpressedDesire:
		return domain.PhaseDesire
	case ind.HasSharedPersonalInfo:
		return domain.PhaseTrust
	default:
		return domain.PhaseInterest
	}
}

// EstimatePhaseProgress calcula el progreso 0-100 dentro de la fase.
// Sin mensajes de usuario el progreso es 0 en cualquier fase.
func EstimatePhaseProgress(phase domain.InfluencePhase, userMessages []string) int {
	total := len(userMessages)
	if total == 0 {
		return 0
	}
	msgs := normalizeAll(userMessages)

	ratio := func(match func(string) bool) float64 {
		n := 0
		for _, m := range msgs {
			if match(m) {
				n++
			}
		}
		return float64(n) / float64(total)
	}

	var progress float64
	switch phase {
	case domain.PhaseInterest:
		progress = 100 * ratio(func(m string) bool { return containsAny(m, []string{"?"}) })
	case domain.PhaseTrust:
		progress = 100 * ratio(func(m string) bool { return containsWord(m, selfReferenceWords) })
	case domain.PhaseDesire:
		progress = 75 * ratio(func(m string) bool { return containsAny(m, desirePhrases) })
	case domain.PhaseAction:
		// No hay rama que distinga "accion tomada" de "por tomarla": constante.
		progress = actionPhaseProgress
	case domain.PhaseLoyalty:
		progress = math.Min(100, 50+5*float64(total))
	}
	return clampScore(progress)
}
