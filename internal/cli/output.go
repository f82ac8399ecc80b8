package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	URL          string   `json:"url"`
	Model        string   `json:"model"`
	Names        []string `json:"names"`
	Affiliations []string `json:"affiliations"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs the two sorted blocks, entries joined by " * "
func writeText(w io.Writer, result *OutputResult) error {
	if _, err := fmt.Fprintf(w, "***Names***\n %s \n\n", strings.Join(result.Names, " * ")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "***Affiliations***\n %s\n", strings.Join(result.Affiliations, " * ")); err != nil {
		return err
	}
	return nil
}
