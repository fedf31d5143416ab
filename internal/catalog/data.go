package catalog

// seedProducts is the storefront inventory. The catalog is compiled in; there
// is no product database behind it.
var seedProducts = []Product{
	{
		ID:            "n1",
		Name:          "Nashwa Oud Royal",
		Category:      "Perfumes",
		Price:         55000,
		OriginalPrice: 65000,
		Image:         "https://images.unsplash.com/photo-1594035910387-fea47794261f?auto=format&fit=crop&q=80&w=600&h=800",
		Description:   "A masterpiece of rare agarwood and deep floral notes.",
		IsNew:         true,
		Colors:        []string{"#3d2b1f", "#1a0f0a"},
		Sizes:         []string{"50ml", "100ml"},
	},
	{
		ID:          "n2",
		Name:        "Patek Philippe Calatrava",
		Category:    "Watches",
		Price:       4500000,
		Image:       "https://images.unsplash.com/photo-1614164185128-e4ec99c436d7?auto=format&fit=crop&q=80&w=600&h=800",
		Description: "The epitome of the round wristwatch.",
		IsNew:       true,
		Colors:      []string{"#e5e7eb", "#f59e0b"},
		Sizes:       []string{"38mm", "40mm"},
	},
	{
		ID:          "n3",
		Name:        "Nashwa Silk Abaya - Emerald",
		Category:    "Fashion",
		Price:       85000,
		Image:       "https://images.unsplash.com/photo-1563170351-be82bc888bb4?auto=format&fit=crop&q=80&w=600&h=800",
		Description: "Hand-woven silk with intricate gold embroidery.",
		Colors:      []string{"#065f46", "#1e3a8a", "#000000"},
		Sizes:       []string{"S", "M", "L", "XL"},
	},
	{
		ID:          "n4",
		Name:        "Devialet Phantom I",
		Category:    "Electronics",
		Price:       320000,
		Image:       "https://images.unsplash.com/photo-1545454675-3531b543be5d?auto=format&fit=crop&q=80&w=600&h=800",
		Description: "Implosive sound, iconic design.",
		IsSale:      true,
		Colors:      []string{"#ffffff", "#000000"},
		Sizes:       []string{"103dB", "108dB"},
	},
	{
		ID:          "n5",
		Name:        "Hermès Birkin 30",
		Category:    "Accessories",
		Price:       2200000,
		Image:       "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?auto=format&fit=crop&q=80&w=600&h=800",
		Description: "The ultimate symbol of luxury craftsmanship.",
		Colors:      []string{"#92400e", "#000000", "#dc2626"},
		Sizes:       []string{"30cm", "35cm"},
	},
	{
		ID:          "n6",
		Name:        "Nashwa Velvet Noir",
		Category:    "Perfumes",
		Price:       42000,
		Image:       "https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?auto=format&fit=crop&q=80&w=600&h=800",
		Description: "Mystery captured in a bottle.",
		Colors:      []string{"#1e1b4b"},
		Sizes:       []string{"100ml"},
	},
	{
		ID:          "n7",
		Name:        "Apple Vision Pro",
		Category:    "Electronics",
		Price:       480000,
		Image:       "https://images.unsplash.com/photo-1621330396173-e41b16297ea1?auto=format&fit=crop&q=80&w=600&h=800",
		Description: "Spatial computing like never before.",
		IsNew:       true,
		Colors:      []string{"#94a3b8"},
		Sizes:       []string{"256GB", "512GB", "1TB"},
	},
	{
		ID:          "n8",
		Name:        "Cartier Love Bracelet",
		Category:    "Accessories",
		Price:       750000,
		Image:       "https://images.unsplash.com/photo-1589128504748-510d94511ca0?auto=format&fit=crop&q=80&w=600&h=800",
		Description: "A symbol of free-spirited love.",
		Colors:      []string{"#f59e0b", "#e5e7eb", "#fbbf24"},
		Sizes:       []string{"16cm", "17cm", "18cm", "19cm"},
	},
}
