// Package ner extracts person and organization entities from call-for-papers
// text using one of two engines.
//
// The span extractor (model m1) wraps MITIE, which returns entities already
// merged into multi-token spans. The token tagger (model m2) assigns one
// category per token; its output is run through IOB marking and the chunk
// merger to reconstruct multi-token entities. Both engines produce the same
// (text, category) entity shape with the canonical PERSON and ORG labels.
package ner
