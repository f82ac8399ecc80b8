package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const (
	UserAgent      = "cfp-ner-cli/1.0 (github.com/Msundarv/CFP-NER)"
	DefaultTimeout = 30 * time.Second
)

// ErrNoCFP is returned when the page has no call-for-papers section. Invalid
// wikicfp.com sub-URLs resolve to pages without one.
var ErrNoCFP = errors.New("page has no call for papers section")

// Scraper handles fetching and extracting the call-for-papers text
type Scraper struct {
	client *http.Client
}

// New creates a new Scraper instance
func New(timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchCFP fetches the page at url and extracts its call-for-papers text
func (s *Scraper) FetchCFP(url string) (string, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return s.parseCFP(resp.Body)
}

// parseCFP extracts the call-for-papers text from HTML
func (s *Scraper) parseCFP(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	sel := doc.Find("div.cfp").First()
	if sel.Length() == 0 {
		return "", ErrNoCFP
	}

	return preprocess(strings.Join(textNodes(sel), " ")), nil
}

// textNodes collects every text node under the selection in document order.
// Nodes are later joined with spaces so text from adjacent elements never
// runs together.
func textNodes(sel *goquery.Selection) []string {
	var texts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			texts = append(texts, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, node := range sel.Nodes {
		walk(node)
	}
	return texts
}

// preprocess normalizes scraped text before tagging: non-ASCII characters
// are dropped, newlines and tabs become spaces, and runs of spaces collapse.
func preprocess(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r > 127 {
			continue
		}
		if r == '\n' || r == '\t' {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
