package service

import "behavior-insights/internal/domain"

// profileScores son los puntajes crudos antes del recorte final.
type profileScores struct {
	trust      int
	desire     int
	engagement int
}

// profileSource abstrae de donde salen las señales de un perfil Chase Hughes.
// composeProfile aplica la tabla de decision y los recortes una sola vez para ambos origenes.
type profileSource interface {
	sensoryPreferences() (domain.SensoryPreference, *domain.SensoryPreference)
	influencePhase() (domain.InfluencePhase, int)
	microExpressions() []domain.MicroExpression
	responsiveTechniques() []domain.Technique
	scores(expressions []domain.MicroExpression) profileScores
}

func composeProfile(src profileSource) domain.ChaseHughesProfile {
	primary, secondary := src.sensoryPreferences()
	if !primary.Valid() {
		primary = domain.SensoryKinesthetic
	}
	if secondary != nil && (!secondary.Valid() || *secondary == primary) {
		secondary = nil
	}

	phase, progress := src.influencePhase()
	if !phase.Valid() {
		phase = domain.PhaseInterest
	}

	expressions := src.microExpressions()
	if expressions == nil {
		expressions = []domain.MicroExpression{}
	}
	techniques := src.responsiveTechniques()
	raw := src.scores(expressions)

	profile := domain.ChaseHughesProfile{
		PrimarySensoryPreference:   primary,
		SecondarySensoryPreference: secondary,
		CurrentInfluencePhase:      phase,
		InfluencePhaseProgress:     clampScore(float64(progress)),
		DetectedMicroExpressions:   expressions,
		ResponsiveToTechniques:     techniques,
		TrustScore:                 clampScore(float64(raw.trust)),
		DesireScore:                clampScore(float64(raw.desire)),
		EngagementScore:            clampScore(float64(raw.engagement)),
	}
	profile.SuggestedApproach = RecommendApproach(ApproachInput{
		PrimarySensory: profile.PrimarySensoryPreference,
		Phase:          profile.CurrentInfluencePhase,
		Techniques:     profile.ResponsiveToTechniques,
		TrustScore:     profile.TrustScore,
		DesireScore:    profile.DesireScore,
	})
	return profile
}

// BehavioralAnalyzer construye perfiles a partir de mensajes e interacciones crudas.
// No tiene estado: es seguro usarlo desde varias goroutines.
type BehavioralAnalyzer struct{}

// DefaultBehavioralAnalyzer permite uso directo sin instanciar.
var DefaultBehavioralAnalyzer = BehavioralAnalyzer{}

// CreateBehavioralProfile es una funcion pura de la entrada; no hace I/O.
func (BehavioralAnalyzer) CreateBehavioralProfile(signals domain.RawSignals) domain.ChaseHughesProfile {
	return composeProfile(newRawSignalSource(signals))
}

type rawSignalSource struct {
	signals      domain.RawSignals
	userMessages []string
}

func newRawSignalSource(signals domain.RawSignals) rawSignalSource {
	return rawSignalSource{
		signals:      signals,
		userMessages: signals.UserMessages(),
	}
}

func (s rawSignalSource) sensoryPreferences() (domain.SensoryPreference, *domain.SensoryPreference) {
	return ClassifySensoryPreference(s.userMessages, s.signals.InteractionHistory.PageViews)
}

func (s rawSignalSource) influencePhase() (domain.InfluencePhase, int) {
	indicators := ComputePhaseIndicators(s.userMessages, s.signals.InteractionHistory)
	phase := ClassifyInfluencePhase(indicators)
	return phase, EstimatePhaseProgress(phase, s.userMessages)
}

func (s rawSignalSource) microExpressions() []domain.MicroExpression {
	return DetectMicroExpressions(s.userMessages)
}

func (s rawSignalSource) responsiveTechniques() []domain.Technique {
	return IdentifyResponsiveTechniques(s.userMessages, s.signals.InteractionHistory)
}

func (s rawSignalSource) scores(expressions []domain.MicroExpression) profileScores {
	return profileScores{
		trust:      CalculateTrustScore(s.userMessages, s.signals.InteractionHistory.PageViews, expressions),
		desire:     CalculateDesireScore(s.userMessages, s.signals.ContentPreferences),
		engagement: CalculateEngagementScore(s.signals.InteractionHistory),
	}
}
