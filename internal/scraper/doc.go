// Package scraper provides HTTP fetching and HTML parsing for wikicfp.com
// call-for-papers pages.
//
// The scraper fetches an event page and extracts the text of its cfp
// section, normalizing the result for the NER engines: non-ASCII characters
// are stripped and whitespace is collapsed to single spaces. Pages without a
// cfp section (including invalid wikicfp.com sub-URLs) report ErrNoCFP.
package scraper
