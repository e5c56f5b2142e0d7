package catalog

import (
	"errors"
	"strings"

	"sniptaste/internal/textutil"
)

// Catalog is the read-only view the engine indexes by identifier
// and free-text title match. Loaded once per session, never mutated.
type Catalog struct {
	sections []Section
	byID     map[string]int
}

// New validates and indexes the given sections.
func New(sections []Section) (*Catalog, error) {
	if len(sections) == 0 {
		return nil, errors.New("empty catalog")
	}

	byID := make(map[string]int, len(sections))
	for i, s := range sections {
		if s.ID == "" || s.Title == "" {
			return nil, errors.New("section missing id or title")
		}
		if _, dup := byID[s.ID]; dup {
			return nil, errors.New("duplicate section id: " + s.ID)
		}
		switch s.Mode {
		case SinglePrice, DualPrice, ListOnly:
		default:
			return nil, errors.New("unknown pricing mode in section " + s.ID)
		}
		for _, it := range s.Items {
			if it.Name == "" {
				return nil, errors.New("unnamed item in section " + s.ID)
			}
			if it.HasSizes() == (it.Price > 0) {
				return nil, errors.New("item " + it.Name + " must carry exactly one pricing shape")
			}
		}
		byID[s.ID] = i
	}

	return &Catalog{sections: sections, byID: byID}, nil
}

// Sections returns the ordered section list.
func (c *Catalog) Sections() []Section {
	return c.sections
}

// SectionByID looks a section up by identifier.
func (c *Catalog) SectionByID(id string) (Section, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Section{}, false
	}
	return c.sections[i], true
}

// MatchSection resolves normalized free text against section ids and
// titles. Orderable sections only; list-only boards never match.
func (c *Catalog) MatchSection(text string) (Section, bool) {
	if text == "" {
		return Section{}, false
	}
	for _, s := range c.sections {
		if s.Mode == ListOnly {
			continue
		}
		title := textutil.Normalize(s.Title)
		if strings.Contains(text, s.ID) || strings.Contains(title, text) || strings.Contains(text, title) {
			return s, true
		}
	}
	return Section{}, false
}

// MatchItem resolves normalized free text against a section's items
// with a contains match in either direction.
func (c *Catalog) MatchItem(s Section, text string) (Item, bool) {
	if text == "" {
		return Item{}, false
	}
	for _, it := range s.Items {
		name := textutil.Normalize(it.Name)
		if strings.Contains(name, text) || strings.Contains(text, name) {
			return it, true
		}
	}
	return Item{}, false
}

// ItemNames lists the item names of a section, for quick replies.
func ItemNames(s Section) []string {
	names := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		names = append(names, it.Name)
	}
	return names
}

// SectionTitles lists the orderable section titles.
func (c *Catalog) SectionTitles() []string {
	titles := make([]string, 0, len(c.sections))
	for _, s := range c.sections {
		if s.Mode == ListOnly {
			continue
		}
		titles = append(titles, s.Title)
	}
	return titles
}
