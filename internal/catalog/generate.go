package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// catalogSize is the total number of brands in the full catalog,
// seed entries included.
const catalogSize = 200

type nameTemplate struct {
	prefix string
	suffix string
}

var nameTemplates = []nameTemplate{
	{"Solar", "Vision"},
	{"Crystal", "Optics"},
	{"Urban", "Shades"},
	{"Elite", "Eyewear"},
	{"Luxe", "Specs"},
	{"Metro", "Frames"},
	{"Coastal", "Vision"},
	{"Summit", "Eyewear"},
	{"Aurora", "Optics"},
	{"Phoenix", "Shades"},
}

var (
	fillerCategories = []string{"Fashion", "Sports", "Luxury", "Affordable", "Designer"}
	fillerStyles     = []string{"Classic", "Modern", "Retro", "Minimalist", "Bold"}
	fillerCountries  = []string{"USA", "Italy", "France", "Germany", "Japan", "Australia"}
)

// generateFiller produces the programmatically generated portion of the
// catalog. Ids continue after the seed entries so the combined list has
// no collisions. Every field is derived from the loop index alone,
// which keeps the catalog byte-identical across calls.
func generateFiller() []Brand {
	brands := make([]Brand, 0, catalogSize-len(seedBrands))

	for i := len(seedBrands) + 1; i <= catalogSize; i++ {
		tmpl := nameTemplates[i%len(nameTemplates)]
		category := fillerCategories[i%len(fillerCategories)]
		style := fillerStyles[i%len(fillerStyles)]
		country := fillerCountries[i%len(fillerCountries)]

		domain := strings.ToLower(tmpl.prefix) + strings.ToLower(tmpl.suffix) + ".com"

		brands = append(brands, Brand{
			ID:           strconv.Itoa(i),
			Name:         tmpl.prefix + " " + tmpl.suffix,
			Category:     category,
			PriceRange:   fmt.Sprintf("$%d-$%d", 50+i%300, 150+i%500),
			Style:        style,
			Website:      "www." + domain,
			Email:        "partnerships@" + domain,
			Description:  fmt.Sprintf("Premium %s eyewear with %s design", strings.ToLower(category), strings.ToLower(style)),
			Headquarters: country,
			Founded:      1990 + i%30,
			Specialty:    fmt.Sprintf("%s %s eyewear", style, strings.ToLower(category)),
			TargetMarket: category + " consumers",
		})
	}

	return brands
}
