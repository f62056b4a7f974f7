package team

import "strings"

// Catalog resolves franchises by full name or abbreviation.
type Catalog struct {
	byName map[string]Team
	byAbbr map[string]Team
}

func NewCatalog() *Catalog {
	c := &Catalog{
		byName: make(map[string]Team, len(franchises)+len(nameAliases)),
		byAbbr: make(map[string]Team, len(franchises)),
	}
	for _, item := range franchises {
		c.byName[item.Name] = item
		c.byAbbr[item.Abbr] = item
	}
	for alias, abbr := range nameAliases {
		c.byName[alias] = c.byAbbr[abbr]
	}
	return c
}

func (c *Catalog) ByName(name string) (Team, bool) {
	item, ok := c.byName[strings.TrimSpace(name)]
	return item, ok
}

func (c *Catalog) ByAbbr(abbr string) (Team, bool) {
	item, ok := c.byAbbr[strings.ToUpper(strings.TrimSpace(abbr))]
	return item, ok
}

// NameForESPNAbbr returns the full name for an ESPN abbreviation, or the normalized
// abbreviation itself when it is not a known franchise.
func (c *Catalog) NameForESPNAbbr(abbr string) string {
	normalized := NormalizeESPNAbbr(abbr)
	if item, ok := c.byAbbr[normalized]; ok {
		return item.Name
	}
	return normalized
}

// GameID builds the AWAY@HOME key used by the performance log. Names missing from
// the catalog fall back to their first three letters.
func (c *Catalog) GameID(homeName, awayName string) string {
	return c.abbrOrPrefix(awayName) + "@" + c.abbrOrPrefix(homeName)
}

func (c *Catalog) abbrOrPrefix(name string) string {
	if item, ok := c.ByName(name); ok {
		return item.Abbr
	}
	name = strings.TrimSpace(name)
	if len(name) > 3 {
		name = name[:3]
	}
	return strings.ToUpper(name)
}

func (c *Catalog) All() []Team {
	out := make([]Team, len(franchises))
	copy(out, franchises)
	return out
}
