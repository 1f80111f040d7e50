package checkout

import (
	"sort"

	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
)

// Compute partitions cart items by sponsor and derives each partition's
// total, available balance and sufficiency. Items without a sponsor are
// display-only and excluded. Partitions come back ordered by sponsor ID so
// the result is stable across calls. The function is pure: it is re-derived
// on every cart mutation and never persisted.
func Compute(items []domain.CartItem, balances map[int64]int64) []domain.SponsorCheckout {
	bySponsor := make(map[int64][]domain.CartItem)
	for _, it := range items {
		if it.SponsorID == nil {
			continue
		}
		id := *it.SponsorID
		bySponsor[id] = append(bySponsor[id], it)
	}

	out := make([]domain.SponsorCheckout, 0, len(bySponsor))
	for id, group := range bySponsor {
		var total int64
		for _, it := range group {
			total += it.TotalPoints()
		}
		available := balances[id]
		out = append(out, domain.SponsorCheckout{
			SponsorID:   id,
			Items:       group,
			TotalPoints: total,
			Available:   available,
			Sufficient:  available >= total,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].SponsorID < out[j].SponsorID })
	return out
}

// Ready reports whether checkout may be offered: at least one partition and
// every partition sufficient. A single insufficient partition disables
// checkout entirely; partial checkout is not supported.
func Ready(groups []domain.SponsorCheckout) bool {
	if len(groups) == 0 {
		return false
	}
	for _, g := range groups {
		if !g.Sufficient {
			return false
		}
	}
	return true
}
