// Package catalog holds the discoverable brand list and its query
// operations. The catalog is pure in-memory data: the same superset is
// produced on every call and filtering never reorders input.
package catalog

import "strings"

// All returns the full catalog: hand-authored seed entries followed by
// generated filler. The result is a fresh slice on each call so callers
// may filter it freely.
func All() []Brand {
	filler := generateFiller()
	brands := make([]Brand, 0, len(seedBrands)+len(filler))
	brands = append(brands, seedBrands...)
	brands = append(brands, filler...)
	return brands
}

// Categories lists the category filter values offered by the discovery
// UI, with the "all" pseudo-category first.
func Categories() []string {
	return []string{"all", "Luxury", "Ultra Luxury", "Sports", "Fashion", "Designer", "Performance", "Direct-to-Consumer"}
}

// Search filters brands by a case-insensitive substring match against
// name, category, style and specialty. An empty query returns the input
// unchanged. Input order is preserved.
func Search(brands []Brand, query string) []Brand {
	if query == "" {
		return brands
	}

	q := strings.ToLower(query)
	var result []Brand
	for _, b := range brands {
		if strings.Contains(strings.ToLower(b.Name), q) ||
			strings.Contains(strings.ToLower(b.Category), q) ||
			strings.Contains(strings.ToLower(b.Style), q) ||
			strings.Contains(strings.ToLower(b.Specialty), q) {
			result = append(result, b)
		}
	}
	return result
}

// FilterByCategory keeps brands whose category matches exactly,
// case-insensitively. An empty category or "all" returns the input
// unchanged.
func FilterByCategory(brands []Brand, category string) []Brand {
	if category == "" || category == "all" {
		return brands
	}

	var result []Brand
	for _, b := range brands {
		if strings.EqualFold(b.Category, category) {
			result = append(result, b)
		}
	}
	return result
}

// Discovered is a catalog brand annotated with whether the requesting
// user already holds it in their collection.
type Discovered struct {
	Brand
	IsAddedToMyBrands bool `json:"isAddedToMyBrands"`
}

// MarkAdded annotates brands against the user's collection. Matching is
// by case-insensitive name equality rather than id: the catalog and the
// user's collection are deliberately loosely coupled, so two
// differently-cased duplicates collapse to "added".
func MarkAdded(brands []Brand, ownedNames []string) []Discovered {
	owned := make(map[string]struct{}, len(ownedNames))
	for _, name := range ownedNames {
		owned[strings.ToLower(name)] = struct{}{}
	}

	result := make([]Discovered, len(brands))
	for i, b := range brands {
		_, added := owned[strings.ToLower(b.Name)]
		result[i] = Discovered{Brand: b, IsAddedToMyBrands: added}
	}
	return result
}
