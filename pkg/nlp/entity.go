package nlp

import (
	"regexp"
	"unicode/utf8"

	"golang-warga-nlp/internal/entity"
)

type entityMatcher struct {
	entityType entity.EntityType
	pattern    *regexp.Regexp
}

// entityMatchers run in this order; the extracted list is grouped the same way.
var entityMatchers = []entityMatcher{
	{
		entityType: entity.EntityDate,
		pattern:    regexp.MustCompile(`(?i)(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})|(\d{1,2}\s+(januari|februari|maret|april|mei|juni|juli|agustus|september|oktober|november|desember)\s+\d{4})`),
	},
	{
		entityType: entity.EntityMoney,
		pattern:    regexp.MustCompile(`(?i)Rp\.?\s*\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})?|\d{1,3}(?:[.,]\d{3})*\s*(?:rupiah|ribu|juta|miliar)`),
	},
	{
		entityType: entity.EntityLocation,
		pattern:    regexp.MustCompile(`(?i)(?:Blok|RT|RW|Jl\.|Jalan|Kelurahan|Kecamatan|Kota|Kabupaten)\s+\w+(?:\s+\w+)*`),
	},
	{
		entityType: entity.EntityPhone,
		pattern:    regexp.MustCompile(`(?:\+62|62|0)[\s-]?\d{2,4}[\s-]?\d{3,4}[\s-]?\d{3,4}`),
	},
}

// ExtractEntities scans the raw text with every matcher and returns all matches.
// Matches are not deduplicated and may overlap across types.
func ExtractEntities(text string) []entity.Entity {
	entities := []entity.Entity{}
	for _, m := range entityMatchers {
		for _, loc := range m.pattern.FindAllStringIndex(text, -1) {
			entities = append(entities, entity.Entity{
				Type:     m.entityType,
				Value:    text[loc[0]:loc[1]],
				Position: utf8.RuneCountInString(text[:loc[0]]),
			})
		}
	}
	return entities
}
