package domain

import "time"

// InventoryEntry is one owned item. Created only by a successful
// opening; the opening flow never mutates existing entries.
type InventoryEntry struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	ItemID     int64     `json:"item_id"`
	AcquiredAt time.Time `json:"acquired_at"`
	IsSold     bool      `json:"is_sold"`
	Item       *Item     `json:"item,omitempty"`
}

// OpeningRecord is the append-only audit entry for one opening.
// Exactly one exists per successful opening, written atomically with
// the balance debit and the inventory entry.
type OpeningRecord struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	CaseID    int64     `json:"case_id"`
	ItemID    int64     `json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
	Item      *Item     `json:"item,omitempty"`
}

// OpenedCase summarizes the case inside an opening result.
type OpenedCase struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price Cents  `json:"price"`
}

// OpenResult is returned to the caller after a committed opening.
type OpenResult struct {
	Case       OpenedCase `json:"case"`
	Item       Item       `json:"item"`
	NewBalance Cents      `json:"new_balance"`
}
