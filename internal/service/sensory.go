package service

import (
	"math"
	"sort"

	"behavior-insights/internal/domain"
)

var visualPredicates = []string{
	"see", "look", "view", "picture", "imagine", "clear", "bright",
	"show", "appear", "focus", "watch", "colorful",
}

var auditoryPredicates = []string{
	"hear", "listen", "sound", "tell", "talk", "say", "loud",
	"quiet", "ring", "voice", "tune", "rhythm",
}

var kinestheticPredicates = []string{
	"feel", "touch", "grasp", "hold", "handle", "smooth", "rough",
	"warm", "pressure", "comfortable", "solid", "move",
}

// Fragmentos del identificador de pagina que delatan cada canal sensorial.
var (
	visualPages      = []string{"gallery", "photo", "image"}
	auditoryPages    = []string{"audio", "voice", "sound"}
	kinestheticPages = []string{"interact", "game", "experience"}
)

type sensoryCount struct {
	pref  domain.SensoryPreference
	count int
}

// ClassifySensoryPreference devuelve la preferencia primaria y, si tiene puntaje, la secundaria.
// Cada palabra clave cuenta una vez por mensaje; cada pagina vista suma floor(timeSpent/10).
func ClassifySensoryPreference(userMessages []string, pageViews []domain.PageView) (domain.SensoryPreference, *domain.SensoryPreference) {
	counts := []sensoryCount{
		{pref: domain.SensoryVisual},
		{pref: domain.SensoryAuditory},
		{pref: domain.SensoryKinesthetic},
	}

	for _, raw := range userMessages {
		msg := normalize(raw)
		counts[0].count += countMatches(msg, visualPredicates)
		counts[1].count += countMatches(msg, auditoryPredicates)
		counts[2].count += countMatches(msg, kinestheticPredicates)
	}

	for _, pv := range pageViews {
		page := normalize(pv.Page)
		bonus := 0
		if pv.TimeSpent > 0 {
			bonus = int(math.Floor(pv.TimeSpent / 10))
		}
		if containsAny(page, visualPages) {
			counts[0].count += bonus
		}
		if containsAny(page, auditoryPages) {
			counts[1].count += bonus
		}
		if containsAny(page, kinestheticPages) {
			counts[2].count += bonus
		}
	}

	// SliceStable mantiene visual > auditivo > kinestesico en empates.
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})

	primary := counts[0].pref
	if counts[1].count > 0 {
		secondary := counts[1].pref
		return primary, &secondary
	}
	return primary, nil
}
