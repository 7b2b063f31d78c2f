package booking

import (
	"math/rand"
	"sort"

	"beautyspa/models"
)

// PresentationOrder rearranges a resolved candidate list for display. It runs
// after the deterministic pipeline and must keep the available-before-busy
// partition intact, so strategies only reorder within each availability
// group.
type PresentationOrder interface {
	Arrange(candidates []models.CandidateStaff) []models.CandidateStaff
}

// IdentityOrder keeps the pipeline's own ordering.
type IdentityOrder struct{}

func (IdentityOrder) Arrange(candidates []models.CandidateStaff) []models.CandidateStaff {
	return candidates
}

// RandomOrder shuffles candidates for variety, the way the storefront rotates
// which staff get shown first.
type RandomOrder struct {
	Rand *rand.Rand // nil uses the global source
}

func (o RandomOrder) Arrange(candidates []models.CandidateStaff) []models.CandidateStaff {
	shuffle := rand.Shuffle
	if o.Rand != nil {
		shuffle = o.Rand.Shuffle
	}
	return arrangeWithinGroups(candidates, func(group []models.CandidateStaff) {
		shuffle(len(group), func(i, j int) {
			group[i], group[j] = group[j], group[i]
		})
	})
}

// RatingOrder shows the highest-rated staff first.
type RatingOrder struct{}

func (RatingOrder) Arrange(candidates []models.CandidateStaff) []models.CandidateStaff {
	return arrangeWithinGroups(candidates, func(group []models.CandidateStaff) {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Staff.AverageRating > group[j].Staff.AverageRating
		})
	})
}

// OrderFromName maps a config value to a strategy, defaulting to identity.
func OrderFromName(name string) PresentationOrder {
	switch name {
	case "random":
		return RandomOrder{}
	case "rating":
		return RatingOrder{}
	default:
		return IdentityOrder{}
	}
}

func arrangeWithinGroups(candidates []models.CandidateStaff, rearrange func([]models.CandidateStaff)) []models.CandidateStaff {
	out := make([]models.CandidateStaff, len(candidates))
	copy(out, candidates)

	// Candidates arrive partitioned available-first; find the boundary.
	boundary := 0
	for boundary < len(out) && out[boundary].Available {
		boundary++
	}
	rearrange(out[:boundary])
	rearrange(out[boundary:])
	return out
}
