package domain

// Item rarities, lowest to highest.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Item is a winnable catalog entry. Display metadata is owned by the
// catalog and opaque to the opening flow.
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Rarity      string `json:"rarity"`
	Price       Cents  `json:"price"`
}
