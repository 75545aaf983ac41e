package scoring

import (
	"strings"

	"destinos/internal/domain/entity"
)

// Similarity weights.
const (
	SharedDepartmentWeight = 3
	SharedCategoryWeight   = 2
	SameAgeRangeWeight     = 1
	SameTravelStyleWeight  = 2
)

// Similarity scores how alike two stated preference profiles are.
// The score is symmetric, never negative and only meaningful for ranking within one pass.
// Nil profiles and missing lists count as empty; empty labels never match.
func Similarity(a, b *entity.UserProfile) int {
	if a == nil || b == nil {
		return 0
	}

	score := SharedDepartmentWeight * intersectionSize(a.PreferredDepartments, b.PreferredDepartments, CanonicalDepartment)
	score += SharedCategoryWeight * intersectionSize(a.PreferredCategories, b.PreferredCategories, Fold)

	if labelsEqual(a.AgeRange, b.AgeRange) {
		score += SameAgeRangeWeight
	}
	if labelsEqual(a.TravelStyle, b.TravelStyle) {
		score += SameTravelStyleWeight
	}

	return score
}

func labelsEqual(a, b string) bool {
	a = strings.TrimSpace(a)

	return a != "" && a == strings.TrimSpace(b)
}

// intersectionSize counts distinct keys present in both lists.
func intersectionSize(a, b []string, key func(string) string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	left := make(map[string]struct{}, len(a))
	for _, v := range a {
		if k := key(v); k != "" {
			left[k] = struct{}{}
		}
	}

	shared := 0
	for _, v := range b {
		k := key(v)
		if _, ok := left[k]; ok {
			shared++
			delete(left, k)
		}
	}

	return shared
}
