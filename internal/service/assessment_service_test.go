package service

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"behavior-insights/internal/domain"
)

func floatPtr(v float64) *float64 {
	return &v
}

func retentionUser() domain.EnhancedBehavioralProfile {
	return domain.EnhancedBehavioralProfile{
		UserID: "user-1",
		PsychographicProfile: domain.PsychographicProfile{
			BehavioralLoop:    "Retention",
			BrandResonance:    "Loyalty",
			DecisionStage:     "Information Search",
			TrustLevel:        "low",
			PriceSensitivity:  "low",
			ValueOrientation:  "emotional",
			IdentifiedSignals: []string{"high_intent", "interest", "confusion"},
		},
		MarketingOptimizations: domain.MarketingOptimizations{
			RetentionRisk:         floatPtr(0.8),
			ContentPreferences:    []string{"videos", "images"},
			SuggestedPricePoints:  []float64{9.99, 29.99},
			LifetimeValueEstimate: 450,
			RecommendedApproach:   "empathetic storytelling",
			MessagingTone:         "warm",
			NextBestAction:        "Send a personalized welcome back message",
		},
	}
}

func TestCalculateAssessmentScores(t *testing.T) {
	got := CalculateAssessmentScores(retentionUser())
	want := domain.AssessmentScores{
		EngagementPotential:    100,
		ContentAffinity:        85,
		MonetizationPropensity: 95,
		RetentionLikelihood:    20,
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestCalculateAssessmentScores_Defaults(t *testing.T) {
	got := CalculateAssessmentScores(domain.EnhancedBehavioralProfile{})
	want := domain.AssessmentScores{
		EngagementPotential:    50,
		ContentAffinity:        50,
		MonetizationPropensity: 40,
		RetentionLikelihood:    70,
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestCalculateAssessmentScores_Clamping(t *testing.T) {
	tests := []struct {
		name string
		risk float64
		want int
	}{
		{"risk above one", 1.5, 0},
		{"negative risk", -0.2, 100},
		{"zero risk", 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.EnhancedBehavioralProfile{}
			p.MarketingOptimizations.RetentionRisk = floatPtr(tt.risk)
			if got := CalculateAssessmentScores(p).RetentionLikelihood; got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}

	p := domain.EnhancedBehavioralProfile{}
	p.PsychographicProfile.PriceSensitivity = "high"
	if got := CalculateAssessmentScores(p).MonetizationPropensity; got != 30 {
		t.Fatalf("expected monetization 30 for high price sensitivity, got %d", got)
	}
}

func TestGenerateRecommendations_Order(t *testing.T) {
	got := GenerateRecommendations(retentionUser())
	want := []string{
		"Deliver exclusive content on a predictable schedule",
		"Acknowledge loyalty milestones to reinforce the relationship",
		"Build trust with transparent and consistent communication before making offers",
		"Follow up on expressed interest with tailored recommendations",
		"Simplify messaging and clarify how the offering works",
		"Urgent: launch a personalized re-engagement campaign",
		"Urgent: offer a loyalty incentive to prevent churn",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGenerateRecommendations_RetentionThresholds(t *testing.T) {
	tests := []struct {
		name string
		risk *float64
		want int
	}{
		{"absent", nil, 0},
		{"low", floatPtr(0.4), 0},
		{"moderate", floatPtr(0.5), 1},
		{"boundary is moderate", floatPtr(0.7), 1},
		{"urgent", floatPtr(0.71), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.EnhancedBehavioralProfile{}
			p.MarketingOptimizations.RetentionRisk = tt.risk
			if got := GenerateRecommendations(p); len(got) != tt.want {
				t.Fatalf("expected %d recommendations, got %v", tt.want, got)
			}
		})
	}
}

func TestCreateInsightSummary(t *testing.T) {
	got := CreateInsightSummary(retentionUser())
	want := "User is in the Retention stage of the behavioral loop with Loyalty brand resonance." +
		" Trust level is low." +
		" Identified signals: high_intent, interest, confusion." +
		" Recommended approach: empathetic storytelling with a warm tone." +
		" Retention risk is 80%."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	p := retentionUser()
	p.PsychographicProfile.TrustLevel = ""
	p.PsychographicProfile.IdentifiedSignals = nil
	p.MarketingOptimizations.RetentionRisk = nil
	short := CreateInsightSummary(p)
	for _, part := range []string{"Trust level", "Identified signals", "Retention risk"} {
		if strings.Contains(short, part) {
			t.Fatalf("did not expect %q in %q", part, short)
		}
	}
}

func TestGenerateAssessment(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewAssessmentServiceWithClock(func() time.Time { return fixed }, func() string { return "assessment-1" })

	a := svc.GenerateAssessment(retentionUser())
	if a.AssessmentID != "assessment-1" || a.UserID != "user-1" || !a.Timestamp.Equal(fixed) {
		t.Fatalf("unexpected identity fields: %+v", a)
	}
	if a.Scores.RetentionLikelihood != 20 {
		t.Fatalf("expected retention 20, got %d", a.Scores.RetentionLikelihood)
	}
	if len(a.Recommendations) != 7 {
		t.Fatalf("expected 7 recommendations, got %d", len(a.Recommendations))
	}
	if a.ChaseHughesProfile.CurrentInfluencePhase != domain.PhaseLoyalty {
		t.Fatalf("expected loyalty phase, got %s", a.ChaseHughesProfile.CurrentInfluencePhase)
	}

	again := svc.GenerateAssessment(retentionUser())
	if !reflect.DeepEqual(a, again) {
		t.Fatalf("expected deterministic assessment with fixed clock")
	}
}

func TestGetPriorityInsights(t *testing.T) {
	got := GetPriorityInsights(retentionUser())
	want := []string{
		"Next best action: Send a personalized welcome back message",
		"Deliver exclusive content on a predictable schedule",
		"Acknowledge loyalty milestones to reinforce the relationship",
		"Build trust with transparent and consistent communication before making offers",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGetInsightsByCategory(t *testing.T) {
	p := retentionUser()

	if got, want := GetInsightsByCategory(p, "unknown"), GetPriorityInsights(p); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected unknown category to fall back to priority insights, got %v", got)
	}

	tests := []struct {
		category string
		mustHave []string
	}{
		{"engagement", []string{"Deliver exclusive content on a predictable schedule", "Engagement potential score: 100", "Content affinity score: 85"}},
		{"Monetization", []string{"Monetization propensity score: 95", "Suggested price points: $9.99, $29.99", "Estimated lifetime value: $450.00", "Price sensitivity: low"}},
		{"retention", []string{"Urgent: launch a personalized re-engagement campaign", "Retention likelihood: 20%"}},
		{"messaging", []string{"Recommended approach: empathetic storytelling", "Messaging tone: warm", "Simplify messaging and clarify how the offering works"}},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			got := GetInsightsByCategory(p, tt.category)
			joined := strings.Join(got, "\n")
			for _, s := range tt.mustHave {
				if !strings.Contains(joined, s) {
					t.Fatalf("expected %q in %v", s, got)
				}
			}
		})
	}
}
