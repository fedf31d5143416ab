package catalog

// Product is a storefront catalog entry. Prices are integer BDT.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	IsNew         bool     `json:"isNew,omitempty"`
	IsSale        bool     `json:"isSale,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
}
