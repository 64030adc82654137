package service

import (
	"math"
	"strings"
	"unicode"
)

// normalize baja a minusculas y recorta espacios.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsAny(s string, list []string) bool {
	for _, x := range list {
		if strings.Contains(s, x) {
			return true
		}
	}
	return false
}

// countMatches cuenta cuantas palabras clave distintas aparecen en s.
func countMatches(s string, list []string) int {
	n := 0
	for _, x := range list {
		if strings.Contains(s, x) {
			n++
		}
	}
	return n
}

// containsWord busca palabras completas, separando por cualquier caracter no alfanumerico.
// "I'm" produce los tokens "i" y "m".
func containsWord(s string, words []string) bool {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, tok := range tokens {
		for _, w := range words {
			if tok == w {
				return true
			}
		}
	}
	return false
}

func normalizeAll(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, normalize(s))
	}
	return out
}

// clampScore redondea y limita un puntaje a [0,100].
func clampScore(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return int(r)
}
