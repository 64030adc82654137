package service

import (
	"testing"

	"behavior-insights/internal/domain"
)

func TestRecommendApproachDecisionTable(t *testing.T) {
	base := []domain.Technique{domain.TechniqueInterrogationEncapsulation, domain.TechniqueBTEMapping}

	tests := []struct {
		name          string
		in            ApproachInput
		wantTechnique domain.Technique
		wantPattern   string
		wantVisual    bool
		wantAudio     bool
	}{
		{
			name:          "interest with interrogation",
			in:            ApproachInput{Phase: domain.PhaseInterest, Techniques: base},
			wantTechnique: domain.TechniqueInterrogationEncapsulation,
			wantPattern:   interrogationPattern,
		},
		{
			name:          "interest without interrogation falls back to visual",
			in:            ApproachInput{Phase: domain.PhaseInterest, PrimarySensory: domain.SensoryVisual},
			wantTechnique: domain.TechniqueBTEMapping,
			wantPattern:   visualPattern,
			wantVisual:    true,
		},
		{
			name: "trust with reciprocity",
			in: ApproachInput{
				Phase:      domain.PhaseTrust,
				Techniques: []domain.Technique{domain.TechniqueReciprocityTrigger},
			},
			wantTechnique: domain.TechniqueReciprocityTrigger,
			wantPattern:   reciprocityPattern,
		},
		{
			name:          "trust without reciprocity falls back to auditory",
			in:            ApproachInput{Phase: domain.PhaseTrust, Techniques: base, PrimarySensory: domain.SensoryAuditory},
			wantTechnique: domain.TechniqueBTEMapping,
			wantPattern:   auditoryPattern,
			wantAudio:     true,
		},
		{
			name: "desire with scarcity",
			in: ApproachInput{
				Phase:      domain.PhaseDesire,
				Techniques: append([]domain.Technique{domain.TechniqueScarcityFraming}, base...),
			},
			wantTechnique: domain.TechniqueScarcityFraming,
			wantPattern:   scarcityPattern,
		},
		{
			name:          "action with high desire",
			in:            ApproachInput{Phase: domain.PhaseAction, DesireScore: 71},
			wantTechnique: domain.TechniqueCommitmentConsistency,
			wantPattern:   commitmentPattern,
		},
		{
			name:          "action at threshold falls back to kinesthetic",
			in:            ApproachInput{Phase: domain.PhaseAction, DesireScore: 70, PrimarySensory: domain.SensoryKinesthetic},
			wantTechnique: domain.TechniqueBTEMapping,
			wantPattern:   kinestheticPattern,
		},
		{
			name:          "loyalty always likeability",
			in:            ApproachInput{Phase: domain.PhaseLoyalty},
			wantTechnique: domain.TechniqueLikeabilityEnhancement,
			wantPattern:   likeabilityPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecommendApproach(tt.in)
			if got.Technique != tt.wantTechnique {
				t.Fatalf("expected technique %s, got %s", tt.wantTechnique, got.Technique)
			}
			if got.LanguagePattern != tt.wantPattern {
				t.Fatalf("expected pattern %q, got %q", tt.wantPattern, got.LanguagePattern)
			}
			if (got.VisualCues != nil) != tt.wantVisual {
				t.Fatalf("unexpected visual cues: %v", got.VisualCues)
			}
			if (got.AudioElements != nil) != tt.wantAudio {
				t.Fatalf("unexpected audio elements: %v", got.AudioElements)
			}
		})
	}
}

func TestRecommendApproachDoesNotShareCueSlices(t *testing.T) {
	first := RecommendApproach(ApproachInput{Phase: domain.PhaseTrust, PrimarySensory: domain.SensoryVisual})
	first.VisualCues[0] = "mutated"
	second := RecommendApproach(ApproachInput{Phase: domain.PhaseTrust, PrimarySensory: domain.SensoryVisual})
	if second.VisualCues[0] == "mutated" {
		t.Fatalf("expected a fresh cue list per call")
	}
}
