// Package registry holds the static AML/CTF risk reference tables:
// country tiers, the aggravated FATF/EU list, and sector tiers keyed by
// NAF activity code. Registries are built once and never mutated, so a
// single instance is safe for concurrent evaluations.
package registry

import (
	"strings"
)

// Tier is a discrete risk bucket for a country or sector.
type Tier string

const (
	TierVeryHigh Tier = "TRES_ELEVE"
	TierHigh     Tier = "ELEVE"
	TierModerate Tier = "MODERE"
)

// File is the on-disk (and snapshot) shape of a registry.
type File struct {
	HomeCountry string    `yaml:"home_country" json:"home_country"`
	CatchmentKM float64   `yaml:"catchment_km" json:"catchment_km"`
	Countries   Countries `yaml:"countries" json:"countries"`
	Sectors     Sectors   `yaml:"sectors" json:"sectors"`
}

// Countries lists country names per tier plus the aggravated list.
type Countries struct {
	VeryHigh   []string `yaml:"very_high" json:"very_high"`
	High       []string `yaml:"high" json:"high"`
	Aggravated []string `yaml:"aggravated" json:"aggravated"`
}

// Sectors maps NAF activity codes to sector labels per tier.
type Sectors struct {
	VeryHigh map[string]string `yaml:"very_high" json:"very_high"`
	High     map[string]string `yaml:"high" json:"high"`
	Moderate map[string]string `yaml:"moderate" json:"moderate"`
}

// Registry is an immutable, indexed view of a File.
type Registry struct {
	homeCountry string
	catchmentKM float64

	veryHigh   map[string]string // normalized name -> canonical name
	high       map[string]string
	aggravated map[string]string

	sectorTiers []Tier // lookup precedence
	sectors     map[Tier]map[string]string

	source File
}

// New indexes the given file into a Registry. Zero-valued fields fall
// back to the built-in home country and catchment radius.
func New(f File) *Registry {
	r := &Registry{
		homeCountry: f.HomeCountry,
		catchmentKM: f.CatchmentKM,
		veryHigh:    indexCountries(f.Countries.VeryHigh),
		high:        indexCountries(f.Countries.High),
		aggravated:  indexCountries(f.Countries.Aggravated),
		sectorTiers: []Tier{TierVeryHigh, TierHigh, TierModerate},
		sectors: map[Tier]map[string]string{
			TierVeryHigh: indexSectors(f.Sectors.VeryHigh),
			TierHigh:     indexSectors(f.Sectors.High),
			TierModerate: indexSectors(f.Sectors.Moderate),
		},
		source: f,
	}
	if r.homeCountry == "" {
		r.homeCountry = defaultHomeCountry
	}
	if r.catchmentKM <= 0 {
		r.catchmentKM = defaultCatchmentKM
	}
	return r
}

// HomeCountry returns the servicing establishment's jurisdiction.
func (r *Registry) HomeCountry() string { return r.homeCountry }

// CatchmentKM returns the normal catchment radius in kilometers.
func (r *Registry) CatchmentKM() float64 { return r.catchmentKM }

// CountryTier returns the risk tier of a country, if listed. Matching
// ignores case and diacritics; absent countries carry no tier.
func (r *Registry) CountryTier(name string) (Tier, bool) {
	key := normalizeName(name)
	if _, ok := r.veryHigh[key]; ok {
		return TierVeryHigh, true
	}
	if _, ok := r.high[key]; ok {
		return TierHigh, true
	}
	return "", false
}

// Aggravated reports whether the country is on the FATF/EU aggravated list.
func (r *Registry) Aggravated(name string) bool {
	_, ok := r.aggravated[normalizeName(name)]
	return ok
}

// SameCountry reports whether two country names refer to the same
// country under registry matching rules.
func (r *Registry) SameCountry(a, b string) bool {
	return normalizeName(a) == normalizeName(b)
}

// SectorTier returns the tier and label of a sector code. Tiers are
// checked very-high, high, then moderate; the first match wins.
func (r *Registry) SectorTier(code string) (Tier, string, bool) {
	c := strings.TrimSpace(code)
	if c == "" {
		return "", "", false
	}
	for _, tier := range r.sectorTiers {
		if label, ok := r.sectors[tier][c]; ok {
			return tier, label, true
		}
	}
	return "", "", false
}

// Snapshot returns a copy of the data the registry was built from.
func (r *Registry) Snapshot() File {
	f := r.source
	f.HomeCountry = r.homeCountry
	f.CatchmentKM = r.catchmentKM
	return f
}

func indexCountries(names []string) map[string]string {
	m := make(map[string]string, len(names))
	for _, n := range names {
		m[normalizeName(n)] = n
	}
	return m
}

func indexSectors(src map[string]string) map[string]string {
	m := make(map[string]string, len(src))
	for code, label := range src {
		m[strings.TrimSpace(code)] = label
	}
	return m
}
