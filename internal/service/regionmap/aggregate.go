package regionmap

import (
	"cmp"
	"slices"

	"github.com/vndialect/tudien-backend/internal/domain"
)

// Aggregate expands every link to its provinces and keeps the highest
// strength seen per province. Links to unknown regions, or to regions with
// no provinces below them, contribute nothing. A zero strength counts as
// domain.DefaultUsageStrength.
//
// The result holds one entry per province, ordered by province code.
func Aggregate(h *Hierarchy, links []domain.WordRegion) []domain.MapEntry {
	strongest := make(map[string]int)

	for _, link := range links {
		strength := link.EffectiveStrength()
		for _, code := range h.ExpandToProvinces(link.RegionID) {
			if cur, ok := strongest[code]; !ok || strength > cur {
				strongest[code] = strength
			}
		}
	}

	entries := make([]domain.MapEntry, 0, len(strongest))
	for code, value := range strongest {
		entries = append(entries, domain.MapEntry{ID: code, Value: value})
	}
	slices.SortFunc(entries, func(a, b domain.MapEntry) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return entries
}
