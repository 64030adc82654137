package service

import (
	"math"

	"behavior-insights/internal/domain"
)

// phaseProgressRange es el rango de progreso por fase en el perfil enriquecido.
type phaseProgressRange struct {
	lo, hi float64
}

// signalsForFullProgress es la cantidad de señales que lleva el progreso al tope del rango.
const signalsForFullProgress = 5

var signalExpressions = map[string]domain.MicroExpression{
	"excitement":      domain.ExpressionHappiness,
	"interest":        domain.ExpressionHappiness,
	"satisfaction":    domain.ExpressionHappiness,
	"frustration":     domain.ExpressionAnger,
	"curiosity":       domain.ExpressionSurprise,
	"confusion":       domain.ExpressionSurprise,
	"hesitation":      domain.ExpressionFear,
	"anxiety":         domain.ExpressionFear,
	"price_concern":   domain.ExpressionFear,
	"dissatisfaction": domain.ExpressionDisgust,
}

// enhancedProfileSource deriva el perfil desde los campos de alto nivel del sistema upstream,
// sin mirar mensajes ni interacciones.
type enhancedProfileSource struct {
	profile domain.EnhancedBehavioralProfile
	loop    domain.BehavioralLoop
	loopOK  bool
	trust   domain.Level
	price   domain.Level
}

func newEnhancedProfileSource(p domain.EnhancedBehavioralProfile) enhancedProfileSource {
	loop, ok := domain.ParseBehavioralLoop(p.PsychographicProfile.BehavioralLoop)
	trust, _ := domain.ParseLevel(p.PsychographicProfile.TrustLevel)
	price, _ := domain.ParseLevel(p.PsychographicProfile.PriceSensitivity)
	return enhancedProfileSource{
		profile: p,
		loop:    loop,
		loopOK:  ok,
		trust:   trust,
		price:   price,
	}
}

func (s enhancedProfileSource) sensoryPreferences() (domain.SensoryPreference, *domain.SensoryPreference) {
	mo := s.profile.MarketingOptimizations
	visual := mo.HasContentPreference("videos") || mo.HasContentPreference("images")
	auditory := mo.HasContentPreference("audio") || mo.HasContentPreference("podcasts")
	switch {
	case visual && auditory:
		secondary := domain.SensoryAuditory
		return domain.SensoryVisual, &secondary
	case visual:
		return domain.SensoryVisual, nil
	case auditory:
		return domain.SensoryAuditory, nil
	default:
		return domain.SensoryKinesthetic, nil
	}
}

func (s enhancedProfileSource) phase() domain.InfluencePhase {
	if !s.loopOK {
		return domain.PhaseInterest
	}
	switch s.loop {
	case domain.LoopDiscovery:
		return domain.PhaseInterest
	case domain.LoopEngagement:
		return domain.PhaseTrust
	case domain.LoopConversion:
		return domain.PhaseDesire
	case domain.LoopRetention, domain.LoopAdvocacy:
		return domain.PhaseLoyalty
	default:
		return domain.PhaseInterest
	}
}

func progressRange(phase domain.InfluencePhase) phaseProgressRange {
	switch phase {
	case domain.PhaseTrust:
		return phaseProgressRange{lo: 30, hi: 50}
	case domain.PhaseDesire:
		return phaseProgressRange{lo: 50, hi: 70}
	case domain.PhaseAction:
		return phaseProgressRange{lo: 70, hi: 85}
	case domain.PhaseLoyalty:
		return phaseProgressRange{lo: 85, hi: 100}
	default:
		return phaseProgressRange{lo: 10, hi: 30}
	}
}

// influencePhase ubica el progreso dentro del rango de la fase segun la densidad de señales.
func (s enhancedProfileSource) influencePhase() (domain.InfluencePhase, int) {
	phase := s.phase()
	r := progressRange(phase)
	density := math.Min(1, float64(len(s.profile.PsychographicProfile.IdentifiedSignals))/signalsForFullProgress)
	return phase, int(math.Round(r.lo + (r.hi-r.lo)*density))
}

func (s enhancedProfileSource) microExpressions() []domain.MicroExpression {
	seen := make(map[domain.MicroExpression]struct{})
	var out []domain.MicroExpression
	for _, sig := range s.profile.PsychographicProfile.IdentifiedSignals {
		e, ok := signalExpressions[normalize(sig)]
		if !ok {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	if len(out) == 0 {
		return []domain.MicroExpression{domain.ExpressionNeutral}
	}
	return out
}

func (s enhancedProfileSource) responsiveTechniques() []domain.Technique {
	switch {
	case s.trust == domain.LevelLow:
		return []domain.Technique{
			domain.TechniqueReciprocityTrigger,
			domain.TechniqueInterrogationEncapsulation,
			domain.TechniqueBTEMapping,
		}
	case s.loopOK && s.loop == domain.LoopConversion:
		return []domain.Technique{
			domain.TechniqueScarcityFraming,
			domain.TechniqueSocialProof,
			domain.TechniqueBTEMapping,
		}
	default:
		return []domain.Technique{
			domain.TechniqueInterrogationEncapsulation,
			domain.TechniqueBTEMapping,
		}
	}
}

func (s enhancedProfileSource) scores(_ []domain.MicroExpression) profileScores {
	psy := s.profile.PsychographicProfile
	mo := s.profile.MarketingOptimizations

	trust := 50
	switch s.trust {
	case domain.LevelLow:
		trust = 30
	case domain.LevelHigh:
		trust = 75
	}
	if psy.HasSignal("trust") || psy.HasSignal("satisfaction") {
		trust += 10
	}
	if psy.HasSignal("frustration") || psy.HasSignal("dissatisfaction") {
		trust -= 15
	}

	desire := 40
	switch s.price {
	case domain.LevelLow:
		desire += 15
	case domain.LevelModerate:
		desire += 10
	}
	if psy.HasSignal("high_intent") {
		desire += 20
	}
	if psy.HasSignal("interest") {
		desire += 10
	}

	engagement := 30
	if s.loopOK {
		switch s.loop {
		case domain.LoopDiscovery:
			engagement += 10
		case domain.LoopEngagement:
			engagement += 25
		case domain.LoopConversion:
			engagement += 30
		case domain.LoopRetention:
			engagement += 35
		case domain.LoopAdvocacy:
			engagement += 40
		}
	}
	distinct := make(map[string]struct{}, len(mo.ContentPreferences))
	for _, c := range mo.ContentPreferences {
		if t := normalize(c); t != "" {
			distinct[t] = struct{}{}
		}
	}
	engagement += 5 * len(distinct)

	return profileScores{trust: trust, desire: desire, engagement: engagement}
}
