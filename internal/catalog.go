package internal

import (
	"strconv"
	"sync"
)

// Appearance selects which half of the template catalog a call targets.
type Appearance string

const (
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

// TemplateScale is an ordered, named, 12-step OKLCH scale. A subset of names
// is flagged gray-like (the neutral families).
type TemplateScale struct {
	Name     string
	GrayLike bool
	Steps    [12]OKLCH
}

// TemplateCatalog maps scale name to TemplateScale for one appearance.
// Immutable for the process lifetime once built.
type TemplateCatalog map[string]TemplateScale

var (
	lightCatalog     TemplateCatalog
	lightCatalogOnce sync.Once
	darkCatalog      TemplateCatalog
	darkCatalogOnce  sync.Once
)

// Catalog returns the template catalog for the given appearance, building it
// from the static P3 token tables on first use behind a one-shot
// initializer (first-call-wins; safe for concurrent callers).
func Catalog(appearance Appearance) TemplateCatalog {
	if appearance == AppearanceLight {
		lightCatalogOnce.Do(func() {
			lightCatalog = buildCatalog(lightScaleTokens)
		})
		return lightCatalog
	}
	darkCatalogOnce.Do(func() {
		darkCatalog = buildCatalog(darkScaleTokens)
	})
	return darkCatalog
}

// buildCatalog parses a static token table into OKLCH. A parse failure here
// is a programming/data error in the checked-in catalog, not a user input —
// it panics, mirroring how the teacher's package-level regexp.MustCompile
// calls would also panic on a malformed built-in pattern.
func buildCatalog(tokens map[string][12]string) TemplateCatalog {
	catalog := make(TemplateCatalog, len(tokens))
	for name, toks := range tokens {
		scale := TemplateScale{Name: name, GrayLike: grayLikeNames[name]}
		for i, tok := range toks {
			c, err := ParseP3Token(tok)
			if err != nil {
				panic("internal: built-in template catalog " + name + " step " + strconv.Itoa(i) + ": " + err.Error())
			}
			scale.Steps[i] = RGBToOklch(c)
		}
		catalog[name] = scale
	}
	return catalog
}
