package ner

import (
	"github.com/golangast/nlptagger/tagger/nertagger"
	"github.com/golangast/nlptagger/tagger/tag"
	mitie "github.com/sbl/ner"

	"github.com/Msundarv/CFP-NER/internal/entity"
)

// TokenTagger is the m2 engine. The underlying tagger assigns one category
// per token, so multi-token entities are reconstructed by IOB marking and
// chunk merging.
type TokenTagger struct{}

// NewTokenTagger creates the token-level engine. It needs no model files.
func NewTokenTagger() *TokenTagger {
	return &TokenTagger{}
}

// Extract tags each token of the text and merges consecutive person or
// organization tokens into entities.
func (t *TokenTagger) Extract(text string) ([]entity.Entity, error) {
	tokens := mitie.Tokenize(text)
	if len(tokens) == 0 {
		return []entity.Entity{}, nil
	}

	tagged := nertagger.Nertagger(tag.Tag{
		Sentence: text,
		Tokens:   tokens,
		PosTag:   make([]string, len(tokens)),
		NerTag:   make([]string, len(tokens)),
	})

	tags := make([]TokenTag, len(tokens))
	for i, tok := range tokens {
		tags[i] = TokenTag{Text: tok, Category: tagged.NerTag[i]}
	}

	return Chunk(MarkIOB(tags)), nil
}

// Close is a no-op; the token tagger holds no external resources
func (t *TokenTagger) Close() {}
