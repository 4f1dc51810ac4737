// Package address decomposes free-text French addresses into their
// components. Parsing is fault tolerant: an address that cannot be split
// yields empty fields, never an error, so the downstream tables keep their
// column count regardless of input quality.
package address

import (
	"regexp"

	"pfgen/internal/models"
)

// DefaultCountry is used when no country token is found in the address.
const DefaultCountry = "FR"

// LabeledToken is one (value, label) pair emitted by a structured address
// labeler, e.g. "75002" tagged "postcode".
type LabeledToken struct {
	Value string
	Label string
}

// Labeler is the capability a structured address parser must provide. When
// one is available it takes precedence over the regex fallback.
type Labeler interface {
	Label(address string) []LabeledToken
}

// LabelerFunc adapts a plain function to the Labeler interface.
type LabelerFunc func(address string) []LabeledToken

// Label implements Labeler.
func (f LabelerFunc) Label(address string) []LabeledToken {
	return f(address)
}

// Strategy splits one address string. Implementations must be pure:
// no state survives between calls, so a Strategy is safe for concurrent
// use once constructed.
type Strategy interface {
	Split(address string) models.ParsedAddress
}

// Parser wraps the strategy chosen at construction time. The choice is
// made once and is read-only afterwards, so concurrent runs cannot
// interfere with each other.
type Parser struct {
	strategy Strategy
}

// New builds a Parser. A non-nil labeler selects the structured strategy;
// otherwise the regex fallback is used. An empty defaultCountry falls back
// to DefaultCountry.
func New(labeler Labeler, defaultCountry string) *Parser {
	if defaultCountry == "" {
		defaultCountry = DefaultCountry
	}
	if labeler != nil {
		return &Parser{strategy: &StructuredStrategy{Labeler: labeler, Country: defaultCountry}}
	}
	return &Parser{strategy: &RegexStrategy{Country: defaultCountry}}
}

// Parse splits the address using the selected strategy.
func (p *Parser) Parse(addr string) models.ParsedAddress {
	return p.strategy.Split(addr)
}

// StructuredStrategy maps the labeled tokens of a capability-rich address
// parser onto ParsedAddress fields. When several tokens carry the same
// label the last one wins.
type StructuredStrategy struct {
	Labeler Labeler
	Country string
}

// Split implements Strategy.
func (s *StructuredStrategy) Split(addr string) models.ParsedAddress {
	parsed := models.ParsedAddress{Country: s.Country}
	for _, tok := range s.Labeler.Label(addr) {
		switch tok.Label {
		case "house_number":
			parsed.HouseNumber = tok.Value
		case "road", "footway", "path":
			parsed.Street = tok.Value
		case "postcode":
			parsed.PostalCode = tok.Value
		case "city", "town", "village", "suburb":
			parsed.City = tok.Value
		case "country":
			parsed.Country = tok.Value
		}
	}
	return parsed
}

// addressPattern expects "<number><optional letter> <street> <5-digit
// postal code> <city>", e.g. "10 Rue de la Paix 75002 Paris".
var addressPattern = regexp.MustCompile(`(?i)^\s*(\d+\w?)\s+(.+?)\s+(\d{5})\s+(.+)$`)

// RegexStrategy is the fallback used when no structured labeler is
// available. Anything not matching the expected layout yields empty fields
// except the country default.
type RegexStrategy struct {
	Country string
}

// Split implements Strategy.
func (s *RegexStrategy) Split(addr string) models.ParsedAddress {
	parsed := models.ParsedAddress{Country: s.Country}
	m := addressPattern.FindStringSubmatch(addr)
	if m == nil {
		return parsed
	}
	parsed.HouseNumber = m[1]
	parsed.Street = m[2]
	parsed.PostalCode = m[3]
	parsed.City = m[4]
	return parsed
}
