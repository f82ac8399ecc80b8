// Package cli implements the command-line interface for cfp-ner.
//
// The cli package provides the Cobra-based CLI: it validates the target URL,
// coordinates the scraper and the selected NER engine, partitions the
// extracted entities into names and affiliations, and writes the result as
// text or JSON.
package cli
