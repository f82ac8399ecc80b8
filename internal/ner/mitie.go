package ner

import (
	"fmt"
	"strings"

	mitie "github.com/sbl/ner"

	"github.com/Msundarv/CFP-NER/internal/entity"
)

// DefaultModelPath is where the MITIE english model data is expected when
// no path is configured.
const DefaultModelPath = "/usr/local/share/MITIE-models/english/ner_model.dat"

// SpanExtractor is the m1 engine. MITIE returns entities already merged
// into multi-token spans, so no chunking is needed on this path.
type SpanExtractor struct {
	ext  *mitie.Extractor
	tags []string
}

// NewSpanExtractor loads the MITIE model from modelPath
func NewSpanExtractor(modelPath string) (*SpanExtractor, error) {
	ext, err := mitie.NewExtractor(modelPath)
	if err != nil {
		return nil, fmt.Errorf("loading NER model from %s: %w", modelPath, err)
	}
	return &SpanExtractor{
		ext:  ext,
		tags: ext.Tags(),
	}, nil
}

// Extract tags the text and keeps the person and organization spans
func (s *SpanExtractor) Extract(text string) ([]entity.Entity, error) {
	tokens := mitie.Tokenize(text)

	spans, err := s.ext.Extract(tokens)
	if err != nil {
		return nil, fmt.Errorf("extracting entities: %w", err)
	}

	result := make([]entity.Entity, 0, len(spans))
	for _, span := range spans {
		if span.Tag < 0 || span.Tag >= len(s.tags) {
			continue
		}
		switch s.tags[span.Tag] {
		case entity.CategoryPerson:
			result = append(result, entity.Entity{
				Text:     strings.TrimSpace(span.Name),
				Category: entity.CategoryPerson,
			})
		case rawOrgLabel:
			result = append(result, entity.Entity{
				Text:     strings.TrimSpace(span.Name),
				Category: entity.CategoryOrg,
			})
		}
	}
	return result, nil
}

// Close releases the loaded model
func (s *SpanExtractor) Close() {
	s.ext.Free()
}
