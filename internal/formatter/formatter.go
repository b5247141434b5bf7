// package formatter provides functions to export playlist data to various formats (CSV, Markdown, JSON, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/desertthunder/chartday/internal/models"
)

// ExportToCSV converts a Playlist to CSV format with columns: Title, Artist, Year, YouTube, Spotify
func ExportToCSV(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Title", "Artist", "Year", "YouTube", "Spotify"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range playlist.Songs {
		record := []string{
			song.Title,
			song.Artist,
			strconv.Itoa(song.Year),
			song.YouTube,
			song.Spotify,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a Playlist to Markdown format with per-song search links
func ExportToMarkdown(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Birthday Playlist\n\n")
	buf.WriteString(fmt.Sprintf("**Charts**: %s through %s\n", playlist.From, playlist.To))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(playlist.Songs)))

	buf.WriteString("## Songs\n\n")
	for i, song := range playlist.Songs {
		buf.WriteString(fmt.Sprintf("%d. %s (%s) [%d] ([YouTube](%s), [Spotify](%s))\n",
			i+1, song.Title, song.Artist, song.Year, song.YouTube, song.Spotify))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a Playlist to plain text format, one block per song
func ExportToText(playlist *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Charts: %s through %s\n", playlist.From, playlist.To))
	buf.WriteString(fmt.Sprintf("Songs: %d\n\n", len(playlist.Songs)))

	for i, song := range playlist.Songs {
		buf.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, song.Title, song.Artist))
		buf.WriteString(fmt.Sprintf("   Year: %d\n", song.Year))
		buf.WriteString(fmt.Sprintf("   YouTube: %s\n", song.YouTube))
		buf.WriteString(fmt.Sprintf("   Spotify: %s\n", song.Spotify))
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts a Playlist to indented JSON, the same shape the API serves
func ExportToJSON(playlist *models.Playlist) ([]byte, error) {
	data, err := json.MarshalIndent(playlist, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal playlist: %w", err)
	}
	return data, nil
}

// WriteCSVExport writes a playlist to a CSV file.
//
// Defaults to playlist_songs.csv as the filename.
func WriteCSVExport(playlist *models.Playlist, filepath string) (string, error) {
	if filepath == "" {
		filepath = "playlist_songs.csv"
	}

	csvData, err := ExportToCSV(playlist)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(filepath, csvData, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return filepath, nil
}

// WriteMarkdownExport writes a playlist to a Markdown file.
//
// Defaults to playlist.md as the filename.
func WriteMarkdownExport(playlist *models.Playlist, filepath string) (string, error) {
	if filepath == "" {
		filepath = "playlist.md"
	}

	mdData, err := ExportToMarkdown(playlist)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	if err := os.WriteFile(filepath, mdData, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return filepath, nil
}

// WriteTextExport writes a playlist to a plain text file.
//
// Defaults to playlist.txt as the filename.
func WriteTextExport(playlist *models.Playlist, filepath string) (string, error) {
	if filepath == "" {
		filepath = "playlist.txt"
	}

	textData, err := ExportToText(playlist)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}

// WriteJSONExport writes a playlist to a JSON file.
//
// Defaults to playlist.json as the filename.
func WriteJSONExport(playlist *models.Playlist, filepath string) (string, error) {
	if filepath == "" {
		filepath = "playlist.json"
	}

	jsonData, err := ExportToJSON(playlist)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(filepath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON file: %w", err)
	}

	return filepath, nil
}

// Write dispatches to the exporter for the named format.
//
// Supported formats: text, markdown, csv, json.
func Write(playlist *models.Playlist, format, filepath string) (string, error) {
	switch format {
	case "text", "txt":
		return WriteTextExport(playlist, filepath)
	case "markdown", "md":
		return WriteMarkdownExport(playlist, filepath)
	case "csv":
		return WriteCSVExport(playlist, filepath)
	case "json":
		return WriteJSONExport(playlist, filepath)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
