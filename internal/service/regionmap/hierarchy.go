package regionmap

import (
	"slices"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
)

// Hierarchy is an in-memory index of the region tree built from one read of
// the regions table. It is immutable after construction.
type Hierarchy struct {
	byID     map[uuid.UUID]domain.Region
	children map[uuid.UUID][]uuid.UUID
}

// NewHierarchy indexes regions by id and by parent.
func NewHierarchy(regions []domain.Region) *Hierarchy {
	h := &Hierarchy{
		byID:     make(map[uuid.UUID]domain.Region, len(regions)),
		children: make(map[uuid.UUID][]uuid.UUID),
	}
	for _, r := range regions {
		h.byID[r.ID] = r
		if r.ParentRegionID != nil {
			h.children[*r.ParentRegionID] = append(h.children[*r.ParentRegionID], r.ID)
		}
	}
	return h
}

// Region returns the region with the given id.
func (h *Hierarchy) Region(id uuid.UUID) (domain.Region, bool) {
	r, ok := h.byID[id]
	return r, ok
}

// Len returns the number of indexed regions.
func (h *Hierarchy) Len() int {
	return len(h.byID)
}

// ExpandToProvinces returns the sorted codes of all provinces covered by the
// region. A province covers itself. An unknown id covers nothing.
func (h *Hierarchy) ExpandToProvinces(id uuid.UUID) []string {
	root, ok := h.byID[id]
	if !ok {
		return nil
	}
	if root.IsProvince() {
		return []string{root.Code}
	}

	var codes []string
	visited := map[uuid.UUID]bool{id: true}
	stack := slices.Clone(h.children[id])

	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]

		if visited[cur] {
			continue
		}
		visited[cur] = true

		r := h.byID[cur]
		if r.IsProvince() {
			codes = append(codes, r.Code)
			continue
		}
		stack = append(stack, h.children[cur]...)
	}

	slices.Sort(codes)
	return codes
}
