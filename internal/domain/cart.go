package domain

// CartItem is a single pending-purchase entry. Items are identified by the
// (ProductID, SponsorID) pair: the same product may appear once per sponsor.
// A nil SponsorID marks a display-only item that cannot be checked out.
type CartItem struct {
	ProductID int64   `json:"id"`
	SponsorID *int64  `json:"sponsor_id,omitempty"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// SameIdentity reports whether the item occupies the same cart slot as the
// given (product, sponsor) key.
func (i CartItem) SameIdentity(productID int64, sponsorID *int64) bool {
	if i.ProductID != productID {
		return false
	}
	if i.SponsorID == nil || sponsorID == nil {
		return i.SponsorID == nil && sponsorID == nil
	}
	return *i.SponsorID == *sponsorID
}

// TotalPoints is the point cost of the whole entry.
func (i CartItem) TotalPoints() int64 {
	return Points(i.Price) * int64(i.Quantity)
}

// SponsorBalance is a driver's redeemable point total scoped to one sponsor.
// The client holds a read-only cached copy; the ledger service owns it.
type SponsorBalance struct {
	SponsorID         int64
	Name              string
	Balance           int64
	AllowedCategories []string
}

// SponsorCheckout is one checkout partition: the subset of cart items
// belonging to a single sponsor, settled as one purchase transaction.
// It is derived fresh on every cart mutation and never persisted.
type SponsorCheckout struct {
	SponsorID   int64
	Items       []CartItem
	TotalPoints int64
	Available   int64
	Sufficient  bool
}

// Shortfall returns how many points the partition is missing, zero when
// the balance covers the total.
func (c SponsorCheckout) Shortfall() int64 {
	if c.Sufficient {
		return 0
	}
	return c.TotalPoints - c.Available
}
