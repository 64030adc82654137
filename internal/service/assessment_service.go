package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"behavior-insights/internal/domain"
)

const (
	defaultRetentionLikelihood = 70
	urgentRetentionRisk        = 0.7
	moderateRetentionRisk      = 0.4
	premiumPricePoint          = 25
	priorityInsightLimit       = 3
)

// AssessmentService convierte un perfil enriquecido en puntajes de negocio,
// recomendaciones y un perfil Chase Hughes. No persiste nada.
type AssessmentService struct {
	now   func() time.Time
	newID func() string
}

func NewAssessmentService() *AssessmentService {
	return &AssessmentService{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// NewAssessmentServiceWithClock permite fijar reloj e ids en pruebas.
func NewAssessmentServiceWithClock(now func() time.Time, newID func() string) *AssessmentService {
	svc := NewAssessmentService()
	if now != nil {
		svc.now = now
	}
	if newID != nil {
		svc.newID = newID
	}
	return svc
}

// GenerateAssessment arma la evaluacion completa del perfil.
func (s *AssessmentService) GenerateAssessment(profile domain.EnhancedBehavioralProfile) domain.Assessment {
	return domain.Assessment{
		AssessmentID:       s.newID(),
		UserID:             profile.UserID,
		Timestamp:          s.now(),
		Scores:             CalculateAssessmentScores(profile),
		Recommendations:    GenerateRecommendations(profile),
		InsightSummary:     CreateInsightSummary(profile),
		ChaseHughesProfile: CreateChaseHughesProfile(profile),
	}
}

// CreateChaseHughesProfile deriva el perfil desde los campos de alto nivel, no desde señales crudas.
func CreateChaseHughesProfile(profile domain.EnhancedBehavioralProfile) domain.ChaseHughesProfile {
	return composeProfile(newEnhancedProfileSource(profile))
}

func loopEngagementBonus(loop domain.BehavioralLoop) float64 {
	switch loop {
	case domain.LoopDiscovery:
		return 10
	case domain.LoopEngagement:
		return 20
	case domain.LoopConversion:
		return 15
	case domain.LoopRetention:
		return 25
	case domain.LoopAdvocacy:
		return 30
	default:
		return 0
	}
}

func resonanceBonus(r domain.BrandResonance) float64 {
	switch r {
	case domain.ResonanceAwareness:
		return 5
	case domain.ResonanceConsideration:
		return 10
	case domain.ResonancePreference:
		return 15
	case domain.ResonancePurchase:
		return 20
	case domain.ResonanceLoyalty:
		return 25
	default:
		return 0
	}
}

func decisionStageBonus(d domain.DecisionStage) float64 {
	switch d {
	case domain.DecisionProblemRecognition:
		return 10
	case domain.DecisionInformationSearch:
		return 20
	case domain.DecisionEvaluation:
		return 15
	case domain.DecisionPurchase:
		return 5
	case domain.DecisionPostPurchase:
		return 10
	default:
		return 0
	}
}

// CalculateAssessmentScores calcula los cuatro puntajes de negocio, cada uno en [0,100].
func CalculateAssessmentScores(profile domain.EnhancedBehavioralProfile) domain.AssessmentScores {
	psy := profile.PsychographicProfile
	mo := profile.MarketingOptimizations

	loop, _ := domain.ParseBehavioralLoop(psy.BehavioralLoop)
	resonance, _ := domain.ParseBrandResonance(psy.BrandResonance)
	stage, _ := domain.ParseDecisionStage(psy.DecisionStage)

	engagement := 50 + loopEngagementBonus(loop) + resonanceBonus(resonance)

	affinity := 50 + decisionStageBonus(stage)
	if mo.HasContentPreference("videos") {
		affinity += 10
	}
	if mo.HasContentPreference("images") {
		affinity += 5
	}

	monetization := 40.0
	if strings.EqualFold(strings.TrimSpace(psy.ValueOrientation), "emotional") {
		monetization += 10
	}
	if price, ok := domain.ParseLevel(psy.PriceSensitivity); ok {
		switch price {
		case domain.LevelLow:
			monetization += 20
		case domain.LevelModerate:
			monetization += 10
		case domain.LevelHigh:
			monetization -= 10
		}
	}
	if psy.HasSignal("high_intent") {
		monetization += 15
	}
	for _, p := range mo.SuggestedPricePoints {
		if p > premiumPricePoint {
			monetization += 10
			break
		}
	}

	retention := float64(defaultRetentionLikelihood)
	if mo.RetentionRisk != nil {
		retention = 100 - *mo.RetentionRisk*100
	}

	return domain.AssessmentScores{
		EngagementPotential:    clampScore(engagement),
		ContentAffinity:        clampScore(affinity),
		MonetizationPropensity: clampScore(monetization),
		RetentionLikelihood:    clampScore(retention),
	}
}

func loopRecommendations(profile domain.EnhancedBehavioralProfile) []string {
	loop, _ := domain.ParseBehavioralLoop(profile.PsychographicProfile.BehavioralLoop)
	switch loop {
	case domain.LoopDiscovery:
		return []string{
			"Surface introductory content that showcases personality and range",
			"Offer a low-commitment free preview to spark curiosity",
		}
	case domain.LoopEngagement:
		return []string{
			"Increase interactive touchpoints such as polls and direct replies",
			"Reward consistent participation with personalized acknowledgements",
		}
	case domain.LoopConversion:
		return []string{
			"Present a time-limited offer aligned with expressed interests",
		}
	case domain.LoopRetention:
		return []string{
			"Deliver exclusive content on a predictable schedule",
			"Acknowledge loyalty milestones to reinforce the relationship",
		}
	case domain.LoopAdvocacy:
		return []string{
			"Invite the user to refer friends through a referral incentive",
		}
	default:
		return nil
	}
}

func trustSignalRecommendations(profile domain.EnhancedBehavioralProfile) []string {
	psy := profile.PsychographicProfile
	var out []string
	if level, ok := domain.ParseLevel(psy.TrustLevel); ok && level == domain.LevelLow {
		out = append(out, "Build trust with transparent and consistent communication before making offers")
	}
	if psy.HasSignal("interest") {
		out = append(out, "Follow up on expressed interest with tailored recommendations")
	}
	if psy.HasSignal("confusion") {
		out = append(out, "Simplify messaging and clarify how the offering works")
	}
	if psy.HasSignal("consideration") {
		out = append(out, "Provide testimonials and social proof to support the decision")
	}
	return out
}

func retentionRecommendations(profile domain.EnhancedBehavioralProfile) []string {
	risk := profile.MarketingOptimizations.RetentionRisk
	if risk == nil {
		return nil
	}
	switch {
	case *risk > urgentRetentionRisk:
		return []string{
			"Urgent: launch a personalized re-engagement campaign",
			"Urgent: offer a loyalty incentive to prevent churn",
		}
	case *risk > moderateRetentionRisk:
		return []string{"Monitor engagement closely and schedule a proactive check-in"}
	default:
		return nil
	}
}

// GenerateRecommendations concatena el bloque de etapa, el de confianza/señales y el de retencion.
func GenerateRecommendations(profile domain.EnhancedBehavioralProfile) []string {
	out := []string{}
	out = append(out, loopRecommendations(profile)...)
	out = append(out, trustSignalRecommendations(profile)...)
	out = append(out, retentionRecommendations(profile)...)
	return out
}

// CreateInsightSummary arma el resumen de texto; las partes opcionales se omiten si faltan.
func CreateInsightSummary(profile domain.EnhancedBehavioralProfile) string {
	psy := profile.PsychographicProfile
	mo := profile.MarketingOptimizations

	var b strings.Builder
	fmt.Fprintf(&b, "User is in the %s stage of the behavioral loop with %s brand resonance.",
		psy.BehavioralLoop, psy.BrandResonance)
	if strings.TrimSpace(psy.TrustLevel) != "" {
		fmt.Fprintf(&b, " Trust level is %s.", psy.TrustLevel)
	}
	if len(psy.IdentifiedSignals) > 0 {
		fmt.Fprintf(&b, " Identified signals: %s.", strings.Join(psy.IdentifiedSignals, ", "))
	}
	fmt.Fprintf(&b, " Recommended approach: %s with a %s tone.", mo.RecommendedApproach, mo.MessagingTone)
	if mo.RetentionRisk != nil {
		fmt.Fprintf(&b, " Retention risk is %d%%.", int(math.Round(*mo.RetentionRisk*100)))
	}
	return b.String()
}

// GetPriorityInsights devuelve la proxima mejor accion (si existe) y las primeras recomendaciones.
func GetPriorityInsights(profile domain.EnhancedBehavioralProfile) []string {
	out := []string{}
	if next := strings.TrimSpace(profile.MarketingOptimizations.NextBestAction); next != "" {
		out = append(out, "Next best action: "+next)
	}
	recs := GenerateRecommendations(profile)
	if len(recs) > priorityInsightLimit {
		recs = recs[:priorityInsightLimit]
	}
	return append(out, recs...)
}

// GetInsightsByCategory filtra insights por categoria; una categoria desconocida
// devuelve lo mismo que GetPriorityInsights.
func GetInsightsByCategory(profile domain.EnhancedBehavioralProfile, category string) []string {
	cat, ok := domain.ParseInsightCategory(category)
	if !ok {
		return GetPriorityInsights(profile)
	}

	psy := profile.PsychographicProfile
	mo := profile.MarketingOptimizations
	scores := CalculateAssessmentScores(profile)
	out := []string{}

	switch cat {
	case domain.InsightEngagement:
		out = append(out, loopRecommendations(profile)...)
		out = append(out, fmt.Sprintf("Engagement potential score: %d", scores.EngagementPotential))
		out = append(out, fmt.Sprintf("Content affinity score: %d", scores.ContentAffinity))
	case domain.InsightMonetization:
		out = append(out, fmt.Sprintf("Monetization propensity score: %d", scores.MonetizationPropensity))
		if len(mo.SuggestedPricePoints) > 0 {
			prices := make([]string, 0, len(mo.SuggestedPricePoints))
			for _, p := range mo.SuggestedPricePoints {
				prices = append(prices, fmt.Sprintf("$%.2f", p))
			}
			out = append(out, "Suggested price points: "+strings.Join(prices, ", "))
		}
		out = append(out, fmt.Sprintf("Estimated lifetime value: $%.2f", mo.LifetimeValueEstimate))
		if strings.TrimSpace(psy.PriceSensitivity) != "" {
			out = append(out, "Price sensitivity: "+psy.PriceSensitivity)
		}
	case domain.InsightRetention:
		out = append(out, retentionRecommendations(profile)...)
		out = append(out, fmt.Sprintf("Retention likelihood: %d%%", scores.RetentionLikelihood))
	case domain.InsightMessaging:
		if strings.TrimSpace(mo.RecommendedApproach) != "" {
			out = append(out, "Recommended approach: "+mo.RecommendedApproach)
		}
		if strings.TrimSpace(mo.MessagingTone) != "" {
			out = append(out, "Messaging tone: "+mo.MessagingTone)
		}
		out = append(out, trustSignalRecommendations(profile)...)
	}
	return out
}
