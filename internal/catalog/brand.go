package catalog

// Brand is a discoverable eyewear brand record. Entries are read-only:
// the catalog is assembled once from the seed list plus generated
// filler and never mutated.
type Brand struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	PriceRange   string `json:"priceRange"`
	Style        string `json:"style"`
	Website      string `json:"website"`
	Email        string `json:"email"`
	Description  string `json:"description"`
	Headquarters string `json:"headquarters"`
	Founded      int    `json:"founded"`
	Specialty    string `json:"specialty"`
	TargetMarket string `json:"targetMarket"`
}

// seedBrands is the hand-authored portion of the catalog. Generated
// filler ids continue numbering after the last seed id.
var seedBrands = []Brand{
	{
		ID:           "1",
		Name:         "Ray-Ban",
		Category:     "Luxury",
		PriceRange:   "$150-$300",
		Style:        "Classic",
		Website:      "www.ray-ban.com",
		Email:        "partnerships@ray-ban.com",
		Description:  "Iconic American brand known for aviators and wayfarers",
		Headquarters: "Milan, Italy",
		Founded:      1937,
		Specialty:    "Classic aviators and wayfarers",
		TargetMarket: "Mass premium",
	},
	{
		ID:           "2",
		Name:         "Oakley",
		Category:     "Performance",
		PriceRange:   "$100-$400",
		Style:        "Sports",
		Website:      "www.oakley.com",
		Email:        "business@oakley.com",
		Description:  "Performance eyewear for sports and active lifestyle",
		Headquarters: "California, USA",
		Founded:      1975,
		Specialty:    "Sports performance glasses",
		TargetMarket: "Athletes and active consumers",
	},
	{
		ID:           "3",
		Name:         "Tom Ford",
		Category:     "Ultra Luxury",
		PriceRange:   "$300-$800",
		Style:        "Fashion",
		Website:      "www.tomford.com",
		Email:        "collaborations@tomford.com",
		Description:  "High-end luxury fashion eyewear",
		Headquarters: "New York, USA",
		Founded:      2005,
		Specialty:    "Luxury fashion eyewear",
		TargetMarket: "Ultra-luxury consumers",
	},
	{
		ID:           "4",
		Name:         "Persol",
		Category:     "Luxury",
		PriceRange:   "$200-$500",
		Style:        "Italian",
		Website:      "www.persol.com",
		Email:        "partnerships@persol.com",
		Description:  "Italian craftsmanship with timeless design",
		Headquarters: "Turin, Italy",
		Founded:      1917,
		Specialty:    "Italian handcrafted eyewear",
		TargetMarket: "Luxury consumers",
	},
	{
		ID:           "5",
		Name:         "Maui Jim",
		Category:     "Premium",
		PriceRange:   "$200-$400",
		Style:        "Lifestyle",
		Website:      "www.mauijim.com",
		Email:        "business@mauijim.com",
		Description:  "Hawaiian-inspired polarized sunglasses",
		Headquarters: "Hawaii, USA",
		Founded:      1980,
		Specialty:    "Polarized lenses",
		TargetMarket: "Outdoor enthusiasts",
	},
	{
		ID:           "6",
		Name:         "Warby Parker",
		Category:     "Direct-to-Consumer",
		PriceRange:   "$95-$145",
		Style:        "Modern",
		Website:      "www.warbyparker.com",
		Email:        "partnerships@warbyparker.com",
		Description:  "Modern frames with vintage inspiration",
		Headquarters: "New York, USA",
		Founded:      2010,
		Specialty:    "Direct-to-consumer eyewear",
		TargetMarket: "Millennials and Gen Z",
	},
	{
		ID:           "7",
		Name:         "Gucci",
		Category:     "Ultra Luxury",
		PriceRange:   "$250-$600",
		Style:        "Fashion",
		Website:      "www.gucci.com",
		Email:        "partnerships@gucci.com",
		Description:  "Italian luxury fashion house",
		Headquarters: "Florence, Italy",
		Founded:      1921,
		Specialty:    "High fashion eyewear",
		TargetMarket: "Luxury fashion consumers",
	},
	{
		ID:           "8",
		Name:         "Prada",
		Category:     "Ultra Luxury",
		PriceRange:   "$200-$550",
		Style:        "Fashion",
		Website:      "www.prada.com",
		Email:        "business@prada.com",
		Description:  "Italian luxury fashion brand",
		Headquarters: "Milan, Italy",
		Founded:      1913,
		Specialty:    "Luxury fashion accessories",
		TargetMarket: "High-end fashion consumers",
	},
	{
		ID:           "9",
		Name:         "Versace",
		Category:     "Ultra Luxury",
		PriceRange:   "$250-$700",
		Style:        "Fashion",
		Website:      "www.versace.com",
		Email:        "collaborations@versace.com",
		Description:  "Bold Italian luxury fashion",
		Headquarters: "Milan, Italy",
		Founded:      1978,
		Specialty:    "Bold luxury designs",
		TargetMarket: "Fashion-forward luxury consumers",
	},
	{
		ID:           "10",
		Name:         "Bulgari",
		Category:     "Ultra Luxury",
		PriceRange:   "$300-$800",
		Style:        "Jewelry",
		Website:      "www.bulgari.com",
		Email:        "partnerships@bulgari.com",
		Description:  "Italian luxury jewelry and accessories",
		Headquarters: "Rome, Italy",
		Founded:      1884,
		Specialty:    "Jewelry-inspired eyewear",
		TargetMarket: "Ultra-luxury consumers",
	},
	{
		ID:           "11",
		Name:         "Cartier",
		Category:     "Ultra Luxury",
		PriceRange:   "$400-$1200",
		Style:        "Jewelry",
		Website:      "www.cartier.com",
		Email:        "business@cartier.com",
		Description:  "French luxury jewelry and accessories",
		Headquarters: "Paris, France",
		Founded:      1847,
		Specialty:    "Luxury jewelry-inspired eyewear",
		TargetMarket: "Ultra-high-end consumers",
	},
	{
		ID:           "12",
		Name:         "Chanel",
		Category:     "Ultra Luxury",
		PriceRange:   "$350-$800",
		Style:        "Fashion",
		Website:      "www.chanel.com",
		Email:        "partnerships@chanel.com",
		Description:  "Iconic French luxury fashion house",
		Headquarters: "Paris, France",
		Founded:      1910,
		Specialty:    "Haute couture eyewear",
		TargetMarket: "Ultra-luxury fashion consumers",
	},
	{
		ID:           "13",
		Name:         "Dior",
		Category:     "Ultra Luxury",
		PriceRange:   "$300-$700",
		Style:        "Fashion",
		Website:      "www.dior.com",
		Email:        "collaborations@dior.com",
		Description:  "French luxury fashion and beauty",
		Headquarters: "Paris, France",
		Founded:      1946,
		Specialty:    "Haute couture eyewear",
		TargetMarket: "Luxury fashion consumers",
	},
	{
		ID:           "14",
		Name:         "Nike Vision",
		Category:     "Sports",
		PriceRange:   "$80-$200",
		Style:        "Athletic",
		Website:      "www.nike.com",
		Email:        "partnerships@nike.com",
		Description:  "Athletic performance eyewear",
		Headquarters: "Oregon, USA",
		Founded:      1971,
		Specialty:    "Sports performance",
		TargetMarket: "Athletes and fitness enthusiasts",
	},
	{
		ID:           "15",
		Name:         "Adidas Eyewear",
		Category:     "Sports",
		PriceRange:   "$70-$180",
		Style:        "Athletic",
		Website:      "www.adidas.com",
		Email:        "business@adidas.com",
		Description:  "Sports-focused eyewear solutions",
		Headquarters: "Herzogenaurach, Germany",
		Founded:      1949,
		Specialty:    "Athletic eyewear",
		TargetMarket: "Sports enthusiasts",
	},
	{
		ID:           "16",
		Name:         "Under Armour Eyewear",
		Category:     "Sports",
		PriceRange:   "$90-$220",
		Style:        "Performance",
		Website:      "www.underarmour.com",
		Email:        "partnerships@underarmour.com",
		Description:  "Performance-driven sports eyewear",
		Headquarters: "Maryland, USA",
		Founded:      1996,
		Specialty:    "Performance sports eyewear",
		TargetMarket: "Serious athletes",
	},
	{
		ID:           "17",
		Name:         "Gentle Monster",
		Category:     "Designer",
		PriceRange:   "$200-$400",
		Style:        "Avant-garde",
		Website:      "www.gentlemonster.com",
		Email:        "business@gentlemonster.com",
		Description:  "Korean avant-garde eyewear brand",
		Headquarters: "Seoul, South Korea",
		Founded:      2011,
		Specialty:    "Avant-garde design",
		TargetMarket: "Fashion-forward consumers",
	},
	{
		ID:           "18",
		Name:         "MVMT",
		Category:     "Affordable Fashion",
		PriceRange:   "$60-$120",
		Style:        "Minimalist",
		Website:      "www.mvmt.com",
		Email:        "partnerships@mvmt.com",
		Description:  "Minimalist watches and eyewear",
		Headquarters: "Los Angeles, USA",
		Founded:      2013,
		Specialty:    "Minimalist design",
		TargetMarket: "Young professionals",
	},
	{
		ID:           "19",
		Name:         "Quay Australia",
		Category:     "Fashion",
		PriceRange:   "$50-$100",
		Style:        "Trendy",
		Website:      "www.quayaustralia.com",
		Email:        "business@quayaustralia.com",
		Description:  "Australian festival and fashion eyewear",
		Headquarters: "Melbourne, Australia",
		Founded:      2004,
		Specialty:    "Festival and street fashion",
		TargetMarket: "Gen Z and millennials",
	},
	{
		ID:           "20",
		Name:         "Sunday Somewhere",
		Category:     "Designer",
		PriceRange:   "$180-$350",
		Style:        "Artistic",
		Website:      "www.sundaysomewhere.com",
		Email:        "collaborations@sundaysomewhere.com",
		Description:  "Artistic and creative eyewear designs",
		Headquarters: "New York, USA",
		Founded:      2009,
		Specialty:    "Artistic design",
		TargetMarket: "Creative professionals",
	},
}
