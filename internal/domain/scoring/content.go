package scoring

import (
	"strings"

	"destinos/internal/domain/entity"
)

// Content score weights.
const (
	CategoryMatchWeight   = 3
	DepartmentMatchWeight = 2
	TravelStyleBonus      = 1
)

// styleKeywords lists, per canonical travel style, the category keywords that earn
// the style bonus. Keywords are matched against the folded destination category.
var styleKeywords = map[string][]string{
	"AVENTURA":   {"RURAL"},
	"CULTURAL":   {"GUIA", "AGENCIA", "GUIDE", "AGENCY"},
	"RELAJACION": {"ALOJAMIENTO", "LODGING", "ACCOMMODATION", "HOTEL"},
}

// ContentMatch is the breakdown of a content score.
type ContentMatch struct {
	Score int
	// MatchedCategories holds every preferred category found in the destination
	// category, repeats included.
	MatchedCategories []string
	// MatchedDepartment is the first preferred department equal to the destination's.
	MatchedDepartment string
	StyleBonus        bool
}

// ContentScore scores a destination against a profile. Excluding already
// interacted destinations is the caller's job.
func ContentScore(d *entity.Destination, p *entity.UserProfile) int {
	return ScoreContent(d, p).Score
}

// ScoreContent is ContentScore with the matched attributes, used to explain a recommendation.
func ScoreContent(d *entity.Destination, p *entity.UserProfile) ContentMatch {
	var m ContentMatch
	if d == nil || p == nil {
		return m
	}

	category := strings.ToLower(d.Category)
	for _, pref := range p.PreferredCategories {
		pref = strings.TrimSpace(pref)
		if pref == "" {
			continue
		}
		if strings.Contains(category, strings.ToLower(pref)) {
			m.Score += CategoryMatchWeight
			m.MatchedCategories = append(m.MatchedCategories, pref)
		}
	}

	for _, dept := range p.PreferredDepartments {
		if SameDepartment(dept, d.Department) {
			m.Score += DepartmentMatchWeight
			m.MatchedDepartment = strings.TrimSpace(dept)

			break
		}
	}

	if styleMatches(p.TravelStyle, d.Category) {
		m.Score += TravelStyleBonus
		m.StyleBonus = true
	}

	return m
}

func styleMatches(style, category string) bool {
	keywords, ok := styleKeywords[Fold(style)]
	if !ok {
		return false
	}

	folded := Fold(category)
	for _, kw := range keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}

	return false
}
