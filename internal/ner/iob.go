package ner

import (
	"strings"

	"github.com/Msundarv/CFP-NER/internal/entity"
)

// rawOrgLabel is the organization label some taggers report; it is
// normalized to entity.CategoryOrg when a chunk is emitted.
const rawOrgLabel = "ORGANIZATION"

// Marker is the IOB position of a token relative to an entity chunk
type Marker string

const (
	MarkerBegin   Marker = "B"
	MarkerInside  Marker = "I"
	MarkerOutside Marker = "O"
)

// TokenTag is one token with the coarse category a token-level tagger
// assigned to it.
type TokenTag struct {
	Text     string
	Category string
}

// IOBToken is a token tag with its derived IOB marker
type IOBToken struct {
	Text     string
	Category string
	Marker   Marker
}

// MarkIOB derives IOB markers by grouping every maximal run of person- or
// organization-tagged tokens into one chunk: the first token of a run is
// marked Begin, the rest Inside, and all other tokens Outside.
func MarkIOB(tags []TokenTag) []IOBToken {
	tokens := make([]IOBToken, len(tags))
	inChunk := false

	for i, tt := range tags {
		marker := MarkerOutside
		if isEntityCategory(tt.Category) {
			if inChunk {
				marker = MarkerInside
			} else {
				marker = MarkerBegin
			}
			inChunk = true
		} else {
			inChunk = false
		}
		tokens[i] = IOBToken{Text: tt.Text, Category: tt.Category, Marker: marker}
	}

	return tokens
}

// isEntityCategory reports whether a token category participates in chunking
func isEntityCategory(category string) bool {
	return category == entity.CategoryPerson ||
		category == entity.CategoryOrg ||
		category == rawOrgLabel
}

// Chunk merges IOB-marked tokens into entities with a single forward scan.
// A Begin marker starts an entity with that token's text and category; a
// lookahead appends the text of every immediately following Inside token and
// stops at the first marker that is not Inside. The outer scan resumes from
// the Begin position plus one, so already-consumed Inside tokens are visited
// again and skipped as non-Begin markers. Inside tokens with no preceding
// Begin are skipped the same way. Entities are emitted in document order.
func Chunk(tokens []IOBToken) []entity.Entity {
	result := make([]entity.Entity, 0)

	for i, tok := range tokens {
		if tok.Marker != MarkerBegin {
			continue
		}

		text := strings.TrimSpace(tok.Text)
		for _, next := range tokens[i+1:] {
			if next.Marker != MarkerInside {
				break
			}
			text += " " + strings.TrimSpace(next.Text)
		}

		category := tok.Category
		if category == rawOrgLabel {
			category = entity.CategoryOrg
		}

		result = append(result, entity.Entity{Text: text, Category: category})
	}

	return result
}
