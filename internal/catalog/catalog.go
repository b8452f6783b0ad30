package catalog

import (
	"sort"

	"sayyara-vehicle-api/internal/matching"
)

// Brand is one canonical brand with its display names and accepted aliases.
type Brand struct {
	Token     string
	DisplayEN string
	DisplayAR string
	Aliases   []string
}

// ModelRecord holds the curated production span for one model.
// EndYear 0 means still in production.
type ModelRecord struct {
	Brand     string
	Token     string
	Display   string
	Aliases   []string
	StartYear int
	EndYear   int
}

// Catalog is the immutable reference data: brand and model alias tables plus
// per-model production years. Built once at startup, read-only afterwards.
type Catalog struct {
	brands     []Brand
	brandByTok map[string]Brand
	brandAlias map[string]string            // normalized alias -> brand token
	modelAlias map[string]map[string]string // brand token -> normalized alias -> model token
	models     map[string]ModelRecord       // brand token + "|" + model token
	popular    []string                     // fixed search order for model-as-brand detection
}

// New builds the catalog from the static tables in data.go.
func New() *Catalog {
	c := &Catalog{
		brandByTok: make(map[string]Brand),
		brandAlias: make(map[string]string),
		modelAlias: make(map[string]map[string]string),
		models:     make(map[string]ModelRecord),
		popular:    popularBrands,
	}

	for _, b := range brandTable {
		c.brands = append(c.brands, b)
		c.brandByTok[b.Token] = b
		c.brandAlias[b.Token] = b.Token
		c.brandAlias[matching.Normalize(b.DisplayEN)] = b.Token
		c.brandAlias[matching.Normalize(b.DisplayAR)] = b.Token
		for _, alias := range b.Aliases {
			c.brandAlias[matching.Normalize(alias)] = b.Token
		}
	}

	for _, m := range modelTable {
		c.models[modelKey(m.Brand, m.Token)] = m

		aliases, ok := c.modelAlias[m.Brand]
		if !ok {
			aliases = make(map[string]string)
			c.modelAlias[m.Brand] = aliases
		}
		aliases[m.Token] = m.Token
		aliases[matching.Normalize(m.Display)] = m.Token
		for _, alias := range m.Aliases {
			aliases[matching.Normalize(alias)] = m.Token
		}
	}

	return c
}

// CanonicalBrand maps raw brand text onto a canonical brand token via exact
// (case/diacritic-insensitive) alias lookup. On miss it returns the cleaned
// text unchanged with false, leaving correction to the fuzzy matcher.
func (c *Catalog) CanonicalBrand(raw string) (string, bool) {
	cleaned := matching.Normalize(raw)
	if token, ok := c.brandAlias[cleaned]; ok {
		return token, true
	}
	return cleaned, false
}

// CanonicalModel maps raw model text onto a canonical model token scoped to
// brand. Same miss semantics as CanonicalBrand.
func (c *Catalog) CanonicalModel(brand, raw string) (string, bool) {
	cleaned := matching.Normalize(raw)
	if aliases, ok := c.modelAlias[brand]; ok {
		if token, ok := aliases[cleaned]; ok {
			return token, true
		}
	}
	return cleaned, false
}

// BrandAliasTokens returns every normalized brand alias, sorted. This is the
// candidate list for fuzzy brand correction.
func (c *Catalog) BrandAliasTokens() []string {
	tokens := make([]string, 0, len(c.brandAlias))
	for alias := range c.brandAlias {
		tokens = append(tokens, alias)
	}
	sort.Strings(tokens)
	return tokens
}

// BrandForAlias maps a normalized alias back to its canonical brand token.
func (c *Catalog) BrandForAlias(alias string) (string, bool) {
	token, ok := c.brandAlias[alias]
	return token, ok
}

// ModelTokens returns the canonical model tokens known for a brand, sorted.
func (c *Catalog) ModelTokens(brand string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, token := range c.modelAlias[brand] {
		if !seen[token] {
			seen[token] = true
			tokens = append(tokens, token)
		}
	}
	sort.Strings(tokens)
	return tokens
}

// ModelYears returns the curated production record for a brand/model pair.
func (c *Catalog) ModelYears(brand, model string) (ModelRecord, bool) {
	rec, ok := c.models[modelKey(brand, model)]
	return rec, ok
}

// ModelAsBrand checks whether token is actually a model name under one of
// the popular brands (the user typed a model where a brand was expected).
// Brands are searched in a fixed order and the first hit wins; only the
// curated popular subset is checked, trading recall for bounded cost.
func (c *Catalog) ModelAsBrand(token string) (brand, model string, ok bool) {
	for _, b := range c.popular {
		aliases := c.modelAlias[b]
		if m, ok := aliases[token]; ok {
			return b, m, true
		}
		if m, ok := matching.Closest(token, c.ModelTokens(b), matching.MaxDistanceFor(token)); ok {
			return b, m, true
		}
	}
	return "", "", false
}

// Brands returns all brands in catalog order.
func (c *Catalog) Brands() []Brand {
	return c.brands
}

// BrandDisplay returns the display names for a brand token. Unknown tokens
// come back as-is so messages never show an empty brand.
func (c *Catalog) BrandDisplay(token string) (en, ar string) {
	if b, ok := c.brandByTok[token]; ok {
		return b.DisplayEN, b.DisplayAR
	}
	return token, token
}

// ModelDisplay returns the display name for a model token, falling back to
// the token itself for models outside the catalog.
func (c *Catalog) ModelDisplay(brand, model string) string {
	if rec, ok := c.models[modelKey(brand, model)]; ok {
		return rec.Display
	}
	return model
}

// Size reports catalog dimensions for the health probe.
func (c *Catalog) Size() (brands, models int) {
	return len(c.brands), len(c.models)
}

func modelKey(brand, model string) string {
	return brand + "|" + model
}
