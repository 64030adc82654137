package service

import (
	"reflect"
	"testing"

	"behavior-insights/internal/domain"
)

func userMsgs(contents ...string) []domain.MessageRecord {
	out := make([]domain.MessageRecord, 0, len(contents))
	for _, c := range contents {
		out = append(out, domain.MessageRecord{Content: c, IsUser: true})
	}
	return out
}

func TestCreateBehavioralProfile_EmptyInputBaseline(t *testing.T) {
	profile := DefaultBehavioralAnalyzer.CreateBehavioralProfile(domain.RawSignals{
		MessageHistory: []domain.MessageRecord{},
		InteractionHistory: domain.InteractionHistory{
			ClickPatterns:  []domain.ClickPattern{},
			PageViews:      []domain.PageView{},
			ResponseDelays: []float64{},
		},
		ContentPreferences: []string{},
	})

	if profile.CurrentInfluencePhase != domain.PhaseInterest {
		t.Fatalf("expected interest phase, got %s", profile.CurrentInfluencePhase)
	}
	if profile.InfluencePhaseProgress != 0 {
		t.Fatalf("expected progress 0, got %d", profile.InfluencePhaseProgress)
	}
	if profile.TrustScore != 50 || profile.DesireScore != 40 || profile.EngagementScore != 30 {
		t.Fatalf("unexpected baseline scores: trust=%d desire=%d engagement=%d", profile.TrustScore, profile.DesireScore, profile.EngagementScore)
	}
	if len(profile.DetectedMicroExpressions) != 0 {
		t.Fatalf("expected no micro expressions, got %v", profile.DetectedMicroExpressions)
	}
	want := []domain.Technique{domain.TechniqueInterrogationEncapsulation, domain.TechniqueBTEMapping}
	if !reflect.DeepEqual(profile.ResponsiveToTechniques, want) {
		t.Fatalf("expected %v, got %v", want, profile.ResponsiveToTechniques)
	}
	if profile.SecondarySensoryPreference != nil {
		t.Fatalf("expected no secondary preference, got %s", *profile.SecondarySensoryPreference)
	}
}

func TestCreateBehavioralProfile_EnthusiasticScenario(t *testing.T) {
	profile := DefaultBehavioralAnalyzer.CreateBehavioralProfile(domain.RawSignals{
		MessageHistory: userMsgs("I love this, wow!! yes"),
	})

	for _, e := range []domain.MicroExpression{domain.ExpressionHappiness, domain.ExpressionSurprise} {
		if !profile.HasExpression(e) {
			t.Fatalf("expected expression %s in %v", e, profile.DetectedMicroExpressions)
		}
	}
	for _, tech := range []domain.Technique{domain.TechniqueYesLadder, domain.TechniqueInterrogationEncapsulation, domain.TechniqueBTEMapping} {
		if !profile.HasTechnique(tech) {
			t.Fatalf("expected technique %s in %v", tech, profile.ResponsiveToTechniques)
		}
	}
	if profile.CurrentInfluencePhase != domain.PhaseInterest {
		t.Fatalf("expected interest phase, got %s", profile.CurrentInfluencePhase)
	}
	if profile.TrustScore != 65 {
		t.Fatalf("expected trust 65 from happiness, got %d", profile.TrustScore)
	}
	if profile.SuggestedApproach.Technique != domain.TechniqueInterrogationEncapsulation {
		t.Fatalf("expected interrogation approach, got %s", profile.SuggestedApproach.Technique)
	}
}

func TestCreateBehavioralProfile_IgnoresNonUserMessages(t *testing.T) {
	profile := DefaultBehavioralAnalyzer.CreateBehavioralProfile(domain.RawSignals{
		MessageHistory: []domain.MessageRecord{
			{Content: "I want you to subscribe, my name is Bot", IsUser: false},
		},
	})
	if profile.CurrentInfluencePhase != domain.PhaseInterest || profile.InfluencePhaseProgress != 0 {
		t.Fatalf("expected assistant messages to be ignored, got phase=%s progress=%d", profile.CurrentInfluencePhase, profile.InfluencePhaseProgress)
	}
	if profile.DesireScore != 40 || profile.TrustScore != 50 {
		t.Fatalf("expected baseline scores, got trust=%d desire=%d", profile.TrustScore, profile.DesireScore)
	}
}

func TestCreateBehavioralProfile_Deterministic(t *testing.T) {
	signals := domain.RawSignals{
		MessageHistory: userMsgs("I want to see the gallery", "what is the price?", "my name is Leo"),
		InteractionHistory: domain.InteractionHistory{
			ClickPatterns:  []domain.ClickPattern{{Element: "exclusive-set", TimeViewing: 4}},
			PageViews:      []domain.PageView{{Page: "photo-gallery", TimeSpent: 120}, {Page: "reviews", TimeSpent: 30}},
			ResponseDelays: []float64{3, 5},
		},
		ContentPreferences: []string{"images"},
	}
	first := DefaultBehavioralAnalyzer.CreateBehavioralProfile(signals)
	second := BehavioralAnalyzer{}.CreateBehavioralProfile(signals)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical profiles, got %+v and %+v", first, second)
	}
	if first.CurrentInfluencePhase != domain.PhaseDesire {
		t.Fatalf("expected desire phase, got %s", first.CurrentInfluencePhase)
	}
	if first.SuggestedApproach.Technique != domain.TechniqueScarcityFraming {
		t.Fatalf("expected scarcity framing, got %s", first.SuggestedApproach.Technique)
	}
}

func TestCreateBehavioralProfile_Monotonicity(t *testing.T) {
	prevTrust, prevDesire := -1, -1
	var msgs []domain.MessageRecord
	for i := 0; i < 8; i++ {
		msgs = append(msgs, userMsgs("so happy right now", "I would love one")...)
		profile := DefaultBehavioralAnalyzer.CreateBehavioralProfile(domain.RawSignals{MessageHistory: msgs})
		if profile.TrustScore < prevTrust {
			t.Fatalf("trust decreased from %d to %d", prevTrust, profile.TrustScore)
		}
		if profile.DesireScore < prevDesire {
			t.Fatalf("desire decreased from %d to %d", prevDesire, profile.DesireScore)
		}
		prevTrust, prevDesire = profile.TrustScore, profile.DesireScore
	}
}

func TestCreateBehavioralProfile_LoyaltyPrecedence(t *testing.T) {
	profile := DefaultBehavioralAnalyzer.CreateBehavioralProfile(domain.RawSignals{
		MessageHistory: userMsgs("my name is Sam", "I want more"),
		InteractionHistory: domain.InteractionHistory{
			ClickPatterns: []domain.ClickPattern{{Element: "purchase-button"}},
			PageViews:     sixPageViews(true),
		},
	})
	if profile.CurrentInfluencePhase != domain.PhaseLoyalty {
		t.Fatalf("expected loyalty, got %s", profile.CurrentInfluencePhase)
	}
	if profile.InfluencePhaseProgress != 60 {
		t.Fatalf("expected loyalty progress 60, got %d", profile.InfluencePhaseProgress)
	}
	if profile.SuggestedApproach.Technique != domain.TechniqueLikeabilityEnhancement {
		t.Fatalf("expected likeability, got %s", profile.SuggestedApproach.Technique)
	}
}

func TestCreateBehavioralProfile_ScoresStayInRange(t *testing.T) {
	var msgs []domain.MessageRecord
	for i := 0; i < 30; i++ {
		msgs = append(msgs, userMsgs("I am so happy, I want the price? my name is X")...)
	}
	var views []domain.PageView
	for i := 0; i < 40; i++ {
		views = append(views, domain.PageView{Page: "about-testimonial-gallery", TimeSpent: 5000})
	}
	profile := DefaultBehavioralAnalyzer.CreateBehavioralProfile(domain.RawSignals{
		MessageHistory:     msgs,
		InteractionHistory: domain.InteractionHistory{PageViews: views, ResponseDelays: []float64{0}},
		ContentPreferences: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"},
	})
	for name, v := range map[string]int{
		"trust":      profile.TrustScore,
		"desire":     profile.DesireScore,
		"engagement": profile.EngagementScore,
		"progress":   profile.InfluencePhaseProgress,
	} {
		if v < 0 || v > 100 {
			t.Fatalf("%s out of range: %d", name, v)
		}
	}
}
