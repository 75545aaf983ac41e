package memory

import (
	"slices"

	"destinos/internal/domain/entity"
)

func cloneProfile(p *entity.UserProfile) *entity.UserProfile {
	cp := *p
	cp.PreferredCategories = slices.Clone(p.PreferredCategories)
	cp.PreferredDepartments = slices.Clone(p.PreferredDepartments)

	return &cp
}

func cloneInteraction(i *entity.Interaction) *entity.Interaction {
	cp := *i

	return &cp
}

func cloneTransaction(t *entity.PointTransaction) *entity.PointTransaction {
	cp := *t
	if t.ReferenceID != nil {
		ref := *t.ReferenceID
		cp.ReferenceID = &ref
	}

	return &cp
}

func cloneReward(r *entity.Reward) *entity.Reward {
	cp := *r
	if r.MaxRedemptions != nil {
		maxRedemptions := *r.MaxRedemptions
		cp.MaxRedemptions = &maxRedemptions
	}
	if r.ExpiresAt != nil {
		expiresAt := *r.ExpiresAt
		cp.ExpiresAt = &expiresAt
	}

	return &cp
}

func cloneRedemption(r *entity.Redemption) *entity.Redemption {
	cp := *r

	return &cp
}

func cloneSubmission(s *entity.DestinationSubmission) *entity.DestinationSubmission {
	cp := *s
	if s.ReviewedAt != nil {
		reviewedAt := *s.ReviewedAt
		cp.ReviewedAt = &reviewedAt
	}

	return &cp
}
