package nlp

import "regexp"

// entityRule pairs an entity type with its extraction pattern.
// The catalogue is evaluated in order and each type is reported under
// its own key; patterns are case-sensitive on purpose (PERSON and CITY
// rely on capitalisation).
type entityRule struct {
	entityType string
	pattern    *regexp.Regexp
}

var entityCatalogue = []entityRule{
	{"EMAIL", regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)},
	{"PHONE", regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{2,4}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,6}`)},
	{"URL", regexp.MustCompile(`https?://[^\s<>"']+`)},
	{"DATE", regexp.MustCompile(`\b(?:(?:0?[1-9]|[12]\d|3[01])[-/](?:0?[1-9]|1[0-2])[-/]\d{2,4}|\d{4}[-/](?:0?[1-9]|1[0-2])[-/](?:0?[1-9]|[12]\d|3[01]))\b`)},
	{"TIME", regexp.MustCompile(`\b\d{1,2}:\d{2}(?:\s*[AaPp][Mm])?\b`)},
	{"CURRENCY", regexp.MustCompile(`(?:[\$€£₹]\s*\d+(?:,\d{3})*(?:\.\d{1,2})?|\d+(?:,\d{3})*(?:\.\d{1,2})?\s*(?:USD|EUR|GBP|INR|dollars?|euros?|pounds?|rupees?))`)},
	{"PERSON", regexp.MustCompile(`\b(?:Mr|Mrs|Ms|Dr|Prof)\.?\s+[A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2}\b`)},
	{"CITY", regexp.MustCompile(`\b(?:New\s*York|Los\s*Angeles|Chicago|Houston|Phoenix|San\s*Francisco|London|Paris|Tokyo|Mumbai|Delhi|Bangalore|Bengaluru|Chennai|Kolkata|Sydney|Berlin|Dubai|Singapore)\b`)},
}

// EntityExtractor extracts typed entities from text using the fixed
// pattern catalogue. It is stateless and safe for concurrent use.
type EntityExtractor struct{}

// NewEntityExtractor returns an extractor over the built-in catalogue.
func NewEntityExtractor() *EntityExtractor {
	return &EntityExtractor{}
}

// Extract returns entities grouped by type. Within each type matches
// are deduplicated keeping first-seen order; types with no matches are
// omitted from the map entirely.
func (e *EntityExtractor) Extract(text string) map[string][]string {
	entities := make(map[string][]string)
	for _, rule := range entityCatalogue {
		matches := rule.pattern.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		seen := make(map[string]struct{}, len(matches))
		var unique []string
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			unique = append(unique, m)
		}
		entities[rule.entityType] = unique
	}
	return entities
}

// EntityTypes returns the catalogue's type names in evaluation order.
func EntityTypes() []string {
	types := make([]string, len(entityCatalogue))
	for i, rule := range entityCatalogue {
		types[i] = rule.entityType
	}
	return types
}
