package cli

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Msundarv/CFP-NER/internal/config"
	"github.com/Msundarv/CFP-NER/internal/entity"
	"github.com/Msundarv/CFP-NER/internal/logger"
	"github.com/Msundarv/CFP-NER/internal/ner"
	"github.com/Msundarv/CFP-NER/internal/scraper"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// ValidHost is the only site the scraper understands
const ValidHost = "wikicfp.com"

// invalidURLMessage is printed verbatim for invalid URLs and for pages
// without a call-for-papers section; both exit with status 0.
const invalidURLMessage = "Please enter a valid URL"

var (
	flagURL       string
	flagModel     string
	flagModelPath string
	flagFormat    string
	flagVerbose   bool

	cfg *config.Cfg
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = config.Load()

	cmd := &cobra.Command{
		Use:   "cfp-ner",
		Short: "Tag people's names and affiliations on a 'Call For Papers'",
		Long: `A CLI tool to tag people's names and organization affiliations on a
'Call For Papers' page scraped from wikicfp.com.

Two NER systems are available: m1 runs a span extractor that returns
pre-merged entities, m2 runs a token-level tagger whose output is merged
with IOB chunking.`,
		RunE: runTag,
	}

	cmd.Flags().StringVar(&flagURL, "url", "", "URL from where the 'Call For Papers' data is scraped (required)")
	cmd.Flags().StringVar(&flagModel, "model", string(ner.ModelSpan), "NER system: m1 (span extractor, default) or m2 (token tagger)")
	cmd.Flags().StringVar(&flagModelPath, "model-path", cfg.ModelPath, "Path to the MITIE model data (used by m1)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.MarkFlagRequired("url")

	return cmd
}

// runTag is the main command logic
func runTag(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	model := ner.Model(flagModel)
	if model != ner.ModelSpan && model != ner.ModelToken {
		return fmt.Errorf("invalid model: %s (must be 'm1' or 'm2')", flagModel)
	}

	rawURL := strings.TrimSpace(flagURL)
	if !isValidCFPURL(rawURL) {
		fmt.Println(invalidURLMessage)
		os.Exit(ExitSuccess)
	}

	logger.Debug("fetching call for papers", logger.Fields{
		"url":   rawURL,
		"model": string(model),
	})

	sc := scraper.New(cfg.HTTPTimeout)
	cfp, err := sc.FetchCFP(rawURL)
	if errors.Is(err, scraper.ErrNoCFP) {
		fmt.Println(invalidURLMessage)
		os.Exit(ExitSuccess)
	}
	if err != nil {
		return fmt.Errorf("fetching call for papers: %w", err)
	}

	logger.Debug("scraped call for papers", logger.Fields{"chars": len(cfp)})

	tagger, err := ner.New(model, flagModelPath)
	if err != nil {
		return err
	}
	defer tagger.Close()

	entities, err := tagger.Extract(cfp)
	if err != nil {
		return fmt.Errorf("tagging entities: %w", err)
	}

	logger.Debug("tagged entities", logger.Fields{"count": len(entities)})

	names, affiliations := entity.Partition(entities)

	result := &OutputResult{
		URL:          rawURL,
		Model:        string(model),
		Names:        names,
		Affiliations: affiliations,
	}

	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

// isValidCFPURL reports whether raw parses as a URL hosted on wikicfp.com.
// Any sub-URL of wikicfp.com is considered valid.
func isValidCFPURL(raw string) bool {
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := parsed.Hostname()
	return host == ValidHost || strings.HasSuffix(host, "."+ValidHost)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
