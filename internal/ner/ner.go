package ner

import (
	"fmt"

	"github.com/Msundarv/CFP-NER/internal/entity"
)

// Model selects which NER engine performs the extraction
type Model string

const (
	// ModelSpan is the pre-chunked span extractor (default)
	ModelSpan Model = "m1"
	// ModelToken is the token-level tagger followed by IOB chunk merging
	ModelToken Model = "m2"
)

// Tagger extracts named entities from plain text. Both engines implement it.
type Tagger interface {
	Extract(text string) ([]entity.Entity, error)
	Close()
}

// New creates the tagger for the given model. modelPath is only used by
// ModelSpan, which loads its model data from disk.
func New(model Model, modelPath string) (Tagger, error) {
	switch model {
	case ModelSpan:
		return NewSpanExtractor(modelPath)
	case ModelToken:
		return NewTokenTagger(), nil
	default:
		return nil, fmt.Errorf("unknown model: %s (must be 'm1' or 'm2')", model)
	}
}
