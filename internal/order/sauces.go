package order

import (
	"strings"

	"sniptaste/internal/catalog"
	"sniptaste/internal/textutil"
)

// Sauce lists. Main-dish sections (assiettes) get the dish sauces;
// tacos and kabab get the street list. Dispatch is by section title,
// not by item.
var (
	dishSauces   = []string{"Sauce Champignons", "Sauce Poivre", "Sauce Blanche"}
	streetSauces = []string{"Algérienne", "Biggy", "Samouraï", "Harissa", "Mayonnaise", "Ketchup"}
)

var mainDishMarkers = []string{"plat", "assiette"}
var streetSauceMarkers = []string{"tacos", "kabab", "kebab"}

// RequiresSauce reports whether the section's flow asks for a sauce
// before extras.
func RequiresSauce(s catalog.Section) bool {
	title := textutil.Normalize(s.Title)
	for _, m := range append(append([]string{}, mainDishMarkers...), streetSauceMarkers...) {
		if strings.Contains(title, m) || s.ID == m {
			return true
		}
	}
	return false
}

// SauceList picks the sauce set for a section.
func SauceList(s catalog.Section) []string {
	title := textutil.Normalize(s.Title)
	for _, m := range mainDishMarkers {
		if strings.Contains(title, m) || s.ID == m {
			return dishSauces
		}
	}
	return streetSauces
}

// MatchSauce resolves normalized input against the section's sauce
// list with a substring match in either direction.
func MatchSauce(s catalog.Section, text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, sauce := range SauceList(s) {
		name := textutil.Normalize(sauce)
		if strings.Contains(name, text) || strings.Contains(text, name) {
			return sauce, true
		}
	}
	return "", false
}
