package service

import (
	"math"

	"behavior-insights/internal/domain"
)

const (
	trustBaseScore      = 50
	desireBaseScore     = 40
	engagementBaseScore = 30
)

var trustPages = []string{"about", "testimonial", "security", "privacy"}

var selfIdentifyingPhrases = []string{"i am", "my name", "i live", "i like"}

var purchaseIntentWords = []string{"price", "offer", "service", "available"}

// CalculateTrustScore parte de 50 y ajusta por afecto, paginas de confianza y autorrevelacion.
func CalculateTrustScore(userMessages []string, pageViews []domain.PageView, expressions []domain.MicroExpression) int {
	score := float64(trustBaseScore)

	var happy, negative bool
	for _, e := range expressions {
		switch e {
		case domain.ExpressionHappiness:
			happy = true
		case domain.ExpressionAnger, domain.ExpressionDisgust:
			negative = true
		}
	}
	if happy {
		score += 15
	}
	if negative {
		score -= 20
	}

	for _, pv := range pageViews {
		if containsAny(normalize(pv.Page), trustPages) {
			score += 5
		}
	}
	for _, msg := range userMessages {
		if containsAny(normalize(msg), selfIdentifyingPhrases) {
			score += 10
		}
	}
	return clampScore(score)
}

// CalculateDesireScore parte de 40 y suma deseo expresado, preferencias de contenido y
// preguntas con intencion de compra.
func CalculateDesireScore(userMessages []string, contentPreferences []string) int {
	score := float64(desireBaseScore)

	for _, raw := range userMessages {
		msg := normalize(raw)
		if containsAny(msg, desirePhrases) {
			score += 15
		}
		if containsAny(msg, []string{"?"}) && containsAny(msg, purchaseIntentWords) {
			score += 10
		}
	}

	distinct := make(map[string]struct{}, len(contentPreferences))
	for _, tag := range contentPreferences {
		if t := normalize(tag); t != "" {
			distinct[t] = struct{}{}
		}
	}
	score += 5 * float64(len(distinct))

	return clampScore(score)
}

// CalculateEngagementScore parte de 30 y suma tiempo en pagina (tope 50), elementos
// distintos clickeados y una bonificacion por respuestas rapidas.
func CalculateEngagementScore(history domain.InteractionHistory) int {
	score := float64(engagementBaseScore)

	var totalTime float64
	for _, pv := range history.PageViews {
		if pv.TimeSpent > 0 {
			totalTime += pv.TimeSpent
		}
	}
	score += math.Min(50, totalTime/10)

	elements := make(map[string]struct{}, len(history.ClickPatterns))
	for _, click := range history.ClickPatterns {
		elements[click.Element] = struct{}{}
	}
	score += 5 * float64(len(elements))

	if len(history.ResponseDelays) > 0 {
		var sum float64
		for _, d := range history.ResponseDelays {
			if d > 0 {
				sum += d
			}
		}
		avg := sum / float64(len(history.ResponseDelays))
		score += math.Max(0, 10-math.Floor(avg/2))
	}

	return clampScore(score)
}
