package domain

import (
	"strings"
	"time"
)

type AssessmentScores struct {
	EngagementPotential    int `json:"engagementPotential"`
	ContentAffinity        int `json:"contentAffinity"`
	MonetizationPropensity int `json:"monetizationPropensity"`
	RetentionLikelihood    int `json:"retentionLikelihood"`
}

// Assessment es la salida del servicio de evaluacion conductual.
type Assessment struct {
	AssessmentID       string             `json:"assessmentId"`
	UserID             string             `json:"userId"`
	Timestamp          time.Time          `json:"timestamp"`
	Scores             AssessmentScores   `json:"scores"`
	Recommendations    []string           `json:"recommendations"`
	InsightSummary     string             `json:"insightSummary"`
	ChaseHughesProfile ChaseHughesProfile `json:"chaseHughesProfile"`
}

type InsightCategory string

const (
	InsightEngagement   InsightCategory = "engagement"
	InsightMonetization InsightCategory = "monetization"
	InsightRetention    InsightCategory = "retention"
	InsightMessaging    InsightCategory = "messaging"
)

// ParseInsightCategory devuelve false para categorias desconocidas.
func ParseInsightCategory(s string) (InsightCategory, bool) {
	switch c := InsightCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case InsightEngagement, InsightMonetization, InsightRetention, InsightMessaging:
		return c, true
	default:
		return "", false
	}
}

// BehavioralProfileSnapshot guarda un perfil calculado para un usuario.
type BehavioralProfileSnapshot struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId"`
	Profile   ChaseHughesProfile `json:"profile"`
	CreatedAt time.Time          `json:"createdAt"`
}
