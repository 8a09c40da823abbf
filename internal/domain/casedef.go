package domain

// Weight is a drop weight in basis points (1% = 100 bp). Weights are
// relative: P(entry) = weight / sum(weights), so a case's weights need
// not sum to 10000.
type Weight int64

// Percent converts the weight to a display percentage given the total
// weight of its case. Display only; selection math stays on integers.
func (w Weight) Percent(total Weight) float64 {
	if total <= 0 {
		return 0
	}
	return float64(w) / float64(total) * 100
}

// Case is a purchasable bundle of weighted item entries.
type Case struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Price       Cents  `json:"price"`
	IsActive    bool   `json:"is_active"`
}

// CaseEntry is one weighted item slot inside a case.
type CaseEntry struct {
	ItemID int64  `json:"item_id"`
	Weight Weight `json:"drop_weight"`
	Item   *Item  `json:"item,omitempty"`
}

// CaseSnapshot is a defensive copy of a case and its entries, taken at
// the start of one opening and never mutated afterwards. Prices and
// weights observed by a single transaction come exclusively from here.
type CaseSnapshot struct {
	Case    Case
	Entries []CaseEntry
}

// Clone returns a deep copy so callers can hold the snapshot beyond the
// provider's own lifetime without observing catalog mutation.
func (s *CaseSnapshot) Clone() *CaseSnapshot {
	out := &CaseSnapshot{Case: s.Case}
	out.Entries = make([]CaseEntry, len(s.Entries))
	copy(out.Entries, s.Entries)
	for i, e := range s.Entries {
		if e.Item != nil {
			item := *e.Item
			out.Entries[i].Item = &item
		}
	}
	return out
}
