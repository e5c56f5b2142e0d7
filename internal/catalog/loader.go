package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type menuFile struct {
	Sections []Section `yaml:"sections"`
}

// LoadFile reads a YAML menu file and builds the catalog.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}

	var mf menuFile
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return nil, fmt.Errorf("parse menu file: %w", err)
	}

	return New(mf.Sections)
}

// Default returns the built-in house menu, used when no menu file
// is configured. Prices in MAD.
func Default() *Catalog {
	c, err := New(defaultSections())
	if err != nil {
		// the built-in menu is static; a construction error here is a bug
		panic(err)
	}
	return c
}

func defaultSections() []Section {
	return []Section{
		{
			ID:    "pizza",
			Title: "Pizza",
			Mode:  DualPrice,
			Items: []Item{
				{Name: "Pizza Margherita", Sizes: &SizePrices{Small: 25, Large: 45}},
				{Name: "Pizza Végétarienne", Sizes: &SizePrices{Small: 30, Large: 50}},
				{Name: "Pizza Thon", Sizes: &SizePrices{Small: 35, Large: 55}},
				{Name: "Pizza Poulet", Sizes: &SizePrices{Small: 35, Large: 58}},
				{Name: "Pizza Viande Hachée", Sizes: &SizePrices{Small: 40, Large: 60}},
				{Name: "Pizza 4 Fromages", Sizes: &SizePrices{Small: 45, Large: 70}},
			},
			Supplements: []Supplement{
				{Name: "Fromage", Price: 5},
				{Name: "Olives", Price: 3},
				{Name: "Champignons", Price: 5},
			},
			Note: "Supplément possible sur toutes les pizzas",
		},
		{
			ID:    "tacos",
			Title: "Tacos",
			Mode:  SinglePrice,
			Items: []Item{
				{Name: "Tacos Poulet", Price: 25},
				{Name: "Tacos Viande Hachée", Price: 30},
				{Name: "Tacos Cordon Bleu", Price: 33},
				{Name: "Tacos Mixte", Price: 35},
			},
			Supplements: []Supplement{
				{Name: "Fromage", Price: 5},
				{Name: "Oeuf", Price: 3},
			},
		},
		{
			ID:    "kabab",
			Title: "Kabab",
			Mode:  SinglePrice,
			Items: []Item{
				{Name: "Kabab", Price: 22},
				{Name: "Kabab Fromage", Price: 25},
			},
			Supplements: []Supplement{
				{Name: "Fromage", Price: 3},
			},
		},
		{
			ID:    "panini",
			Title: "Panini",
			Mode:  SinglePrice,
			Items: []Item{
				{Name: "Panini Thon", Price: 15},
				{Name: "Panini Poulet", Price: 18},
				{Name: "Panini Viande Hachée", Price: 20},
			},
			Supplements: []Supplement{
				{Name: "Fromage", Price: 3},
			},
		},
		{
			ID:    "plat",
			Title: "Plat - Assiettes",
			Mode:  SinglePrice,
			Items: []Item{
				{Name: "Assiette Poulet", Price: 35},
				{Name: "Assiette Viande", Price: 40},
				{Name: "Assiette Mixte", Price: 45},
			},
			Supplements: []Supplement{
				{Name: "Frites", Price: 7},
			},
			Note: "Servi avec frites et salade",
		},
		{
			ID:    "jus",
			Title: "Jus",
			Mode:  SinglePrice,
			Items: []Item{
				{Name: "Jus d'Orange", Price: 12},
				{Name: "Jus d'Avocat", Price: 15},
				{Name: "Panaché", Price: 18},
			},
		},
		{
			ID:    "supplements",
			Title: "Suppléments",
			Mode:  ListOnly,
			Items: []Item{
				{Name: "Fromage", Price: 5},
				{Name: "Oeuf", Price: 3},
				{Name: "Frites", Price: 7},
			},
			Note: "À ajouter sur votre commande",
		},
	}
}
