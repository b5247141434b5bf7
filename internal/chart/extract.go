package chart

import (
	"bytes"
	"encoding/json"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/desertthunder/chartday/internal/models"
	"github.com/desertthunder/chartday/internal/shared"
)

// maxScannedNodes caps the structured-data walk so an adversarial or
// pathological payload cannot keep the breadth-first search busy forever.
const maxScannedNodes = 10000

var (
	titleKeys  = []string{"title", "song", "songTitle"}
	artistKeys = []string{"artist", "artistName"}

	dataAttrPattern = regexp.MustCompile(`data-title="([^"]+)"[^>]*data-artist="([^"]+)"`)
)

// ExtractEntries locates and extracts title/artist pairs from a raw chart
// payload, tolerating the known shape variants in priority order:
//
//  1. a JSON array of entry-like objects
//  2. a JSON object with a "data" or "songs" array of entry-like objects
//  3. HTML with an embedded #__NEXT_DATA__ JSON blob, searched breadth-first
//     for the first entry-like array (a bounded heuristic, not a parser)
//  4. HTML with data-title/data-artist attributes, read from the parsed
//     document or, failing that, matched textually in the raw markup
//
// Every candidate passes through [shared.CleanText]; entries left with an
// empty title or artist are dropped silently. Order is preserved. A payload
// no strategy understands yields an empty slice, never an error.
func ExtractEntries(payload []byte) []models.Entry {
	var decoded any
	if err := json.Unmarshal(payload, &decoded); err == nil {
		return entriesFromJSON(decoded)
	}
	return entriesFromHTML(payload)
}

// entriesFromJSON handles payloads that are themselves JSON documents.
func entriesFromJSON(decoded any) []models.Entry {
	switch v := decoded.(type) {
	case []any:
		if looksEntryLike(v) {
			return convertEntries(v)
		}
	case map[string]any:
		for _, field := range []string{"data", "songs"} {
			if arr, ok := v[field].([]any); ok && looksEntryLike(arr) {
				return convertEntries(arr)
			}
		}
	}
	return []models.Entry{}
}

// entriesFromHTML handles scraped chart pages.
func entriesFromHTML(payload []byte) []models.Entry {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(payload))
	if err == nil {
		if raw := doc.Find("script#__NEXT_DATA__").First().Text(); raw != "" {
			var decoded any
			if json.Unmarshal([]byte(raw), &decoded) == nil {
				if arr := findEntryArray(decoded); arr != nil {
					if entries := convertEntries(arr); len(entries) > 0 {
						return entries
					}
				}
			}
		}

		rows := doc.Find("[data-title][data-artist]")
		if rows.Length() > 0 {
			entries := make([]models.Entry, 0, rows.Length())
			rows.Each(func(_ int, row *goquery.Selection) {
				title, _ := row.Attr("data-title")
				artist, _ := row.Attr("data-artist")
				if entry, ok := newEntry(title, artist); ok {
					entries = append(entries, entry)
				}
			})
			if len(entries) > 0 {
				return entries
			}
		}
	}

	// Last resort: a textual scan over the raw markup.
	entries := []models.Entry{}
	for _, match := range dataAttrPattern.FindAllSubmatch(payload, -1) {
		if entry, ok := newEntry(string(match[1]), string(match[2])); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// findEntryArray walks arbitrary JSON breadth-first and returns the first
// array whose elements look entry-like. The walk visits at most
// maxScannedNodes values.
func findEntryArray(root any) []any {
	queue := []any{root}
	scanned := 0

	for len(queue) > 0 && scanned < maxScannedNodes {
		current := queue[0]
		queue = queue[1:]
		scanned++

		switch v := current.(type) {
		case []any:
			if looksEntryLike(v) {
				return v
			}
			queue = append(queue, v...)
		case map[string]any:
			for _, value := range v {
				queue = append(queue, value)
			}
		}
	}

	return nil
}

// looksEntryLike reports whether any element of the array is an object
// exposing a recognizable title/artist key pair.
func looksEntryLike(arr []any) bool {
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if hasAnyKey(obj, titleKeys) && hasAnyKey(obj, artistKeys) {
			return true
		}
	}
	return false
}

func hasAnyKey(obj map[string]any, keys []string) bool {
	for _, key := range keys {
		if _, ok := obj[key]; ok {
			return true
		}
	}
	return false
}

// convertEntries normalizes entry-like objects, dropping any candidate
// whose title or artist comes out empty.
func convertEntries(arr []any) []models.Entry {
	entries := make([]models.Entry, 0, len(arr))
	for _, item := range arr {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if entry, ok := newEntry(firstString(obj, titleKeys), firstString(obj, artistKeys)); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// firstString returns the value of the first present key holding a
// non-empty string, honoring the alias priority order.
func firstString(obj map[string]any, keys []string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func newEntry(title, artist string) (models.Entry, bool) {
	title = shared.CleanText(title)
	artist = shared.CleanText(artist)
	if title == "" || artist == "" {
		return models.Entry{}, false
	}
	return models.Entry{Title: title, Artist: artist}, true
}
