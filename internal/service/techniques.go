package service

import "behavior-insights/internal/domain"

var (
	socialProofPages   = []string{"testimonial", "review"}
	scarcityElements   = []string{"limited", "exclusive"}
	baselineTechniques = []domain.Technique{
		domain.TechniqueInterrogationEncapsulation,
		domain.TechniqueBTEMapping,
	}
)

// IdentifyResponsiveTechniques aplica cada prueba de pertenencia por separado y
// agrega siempre las dos tecnicas base.
func IdentifyResponsiveTechniques(userMessages []string, history domain.InteractionHistory) []domain.Technique {
	var out []domain.Technique

	for _, msg := range userMessages {
		if containsAny(normalize(msg), []string{"yes"}) {
			out = append(out, domain.TechniqueYesLadder)
			break
		}
	}
	for _, pv := range history.PageViews {
		if containsAny(normalize(pv.Page), socialProofPages) {
			out = append(out, domain.TechniqueSocialProof)
			break
		}
	}
	for _, click := range history.ClickPatterns {
		if containsAny(normalize(click.Element), scarcityElements) {
			out = append(out, domain.TechniqueScarcityFraming)
			break
		}
	}

	return append(out, baselineTechniques...)
}

func hasTechnique(list []domain.Technique, t domain.Technique) bool {
	for _, x := range list {
		if x == t {
			return true
		}
	}
	return false
}
