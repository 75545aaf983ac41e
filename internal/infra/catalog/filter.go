package catalog

import (
	"strings"

	"destinos/internal/domain/entity"
	"destinos/internal/domain/scoring"
	"destinos/internal/domain/service"
)

// applyFilter keeps records from the allowed departments (all when empty) that
// match the requested department and category, in source order.
func applyFilter(destinations []*entity.Destination, allowed []string, filter service.RegionFilter) []*entity.Destination {
	category := strings.ToLower(strings.TrimSpace(filter.Category))
	department := strings.TrimSpace(filter.Department)

	out := make([]*entity.Destination, 0, len(destinations))
	for _, d := range destinations {
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
		if !departmentAllowed(d.Department, allowed) {
			continue
		}
		if department != "" && !scoring.SameDepartment(department, d.Department) {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(d.Category), category) {
			continue
		}
		out = append(out, d)
	}

	return out
}

func departmentAllowed(department string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if scoring.SameDepartment(a, department) {
			return true
		}
	}

	return false
}
