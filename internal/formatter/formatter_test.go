package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/desertthunder/chartday/internal/models"
	th "github.com/desertthunder/chartday/internal/testing"
)

func samplePlaylist() *models.Playlist {
	return &models.Playlist{
		Songs: []models.Song{
			{
				Title:   "Song One",
				Artist:  "Artist One",
				Year:    2001,
				YouTube: "https://www.youtube.com/results?search_query=Song+One+Artist+One",
				Spotify: "https://open.spotify.com/search/Song%20One%20Artist%20One",
			},
			{
				Title:   "Song Two",
				Artist:  "Artist Two",
				Year:    2002,
				YouTube: "https://www.youtube.com/results?search_query=Song+Two+Artist+Two",
				Spotify: "https://open.spotify.com/search/Song%20Two%20Artist%20Two",
			},
		},
		From: "2001-01-02",
		To:   "2002-06-01",
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(samplePlaylist())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Title,Artist,Year,YouTube,Spotify") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "Song One,Artist One,2001") {
			t.Errorf("CSV missing first record")
		}
		if !strings.Contains(output, "search_query=Song+Two+Artist+Two") {
			t.Errorf("CSV missing search link")
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(samplePlaylist())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "# Birthday Playlist") {
			t.Errorf("Markdown missing title")
		}
		if !strings.Contains(output, "**Charts**: 2001-01-02 through 2002-06-01") {
			t.Errorf("Markdown missing chart range")
		}
		if !strings.Contains(output, "**Songs**: 2") {
			t.Errorf("Markdown missing song count")
		}
		if !strings.Contains(output, "1. Song One (Artist One) [2001]") {
			t.Errorf("Markdown missing first song, got: %s", output)
		}
		if !strings.Contains(output, "[YouTube](https://www.youtube.com/results?search_query=Song+One+Artist+One)") {
			t.Errorf("Markdown missing YouTube link")
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(samplePlaylist())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Charts: 2001-01-02 through 2002-06-01") {
			t.Errorf("Text missing chart range")
		}
		if !strings.Contains(output, "1. Song One (Artist One)") {
			t.Errorf("Text missing first song")
		}
		if !strings.Contains(output, "Year: 2001") {
			t.Errorf("Text missing year line")
		}
		if !strings.Contains(output, "Spotify: https://open.spotify.com/search/Song%20One%20Artist%20One") {
			t.Errorf("Text missing Spotify link")
		}
	})

	t.Run("ExportToJSON", func(t *testing.T) {
		data, err := ExportToJSON(samplePlaylist())
		if err != nil {
			t.Fatalf("ExportToJSON failed: %v", err)
		}

		var decoded models.Playlist
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("exported JSON does not round-trip: %v", err)
		}
		if len(decoded.Songs) != 2 || decoded.From != "2001-01-02" {
			t.Errorf("unexpected decoded playlist: %+v", decoded)
		}
	})
}

func TestWriters(t *testing.T) {
	playlist := samplePlaylist()

	t.Run("WriteCSVExport", func(t *testing.T) {
		tempDir := t.TempDir()
		originalDir := th.MustGetwd(t)
		th.MustChdir(t, tempDir)
		defer th.MustChdir(t, originalDir)

		filepath, err := WriteCSVExport(playlist, "")
		if err != nil {
			t.Fatalf("WriteCSVExport failed: %v", err)
		}

		if filepath != "playlist_songs.csv" {
			t.Errorf("Expected 'playlist_songs.csv', got '%s'", filepath)
		}
		th.AssertFileExists(t, filepath)

		content := th.MustReadFile(t, filepath)
		if !strings.Contains(content, "Title,Artist,Year,YouTube,Spotify") {
			t.Errorf("CSV missing headers")
		}
	})

	t.Run("WriteTextExport", func(t *testing.T) {
		tempDir := t.TempDir()
		originalDir := th.MustGetwd(t)
		th.MustChdir(t, tempDir)
		defer th.MustChdir(t, originalDir)

		filepath, err := WriteTextExport(playlist, "my_playlist.txt")
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}

		if filepath != "my_playlist.txt" {
			t.Errorf("Expected 'my_playlist.txt', got '%s'", filepath)
		}
		th.AssertFileExists(t, filepath)

		content := th.MustReadFile(t, filepath)
		if !strings.Contains(content, "1. Song One (Artist One)") {
			t.Errorf("Text missing song listing")
		}
	})

	t.Run("WriteMarkdownExport", func(t *testing.T) {
		tempDir := t.TempDir()
		originalDir := th.MustGetwd(t)
		th.MustChdir(t, tempDir)
		defer th.MustChdir(t, originalDir)

		filepath, err := WriteMarkdownExport(playlist, "")
		if err != nil {
			t.Fatalf("WriteMarkdownExport failed: %v", err)
		}

		if filepath != "playlist.md" {
			t.Errorf("Expected 'playlist.md', got '%s'", filepath)
		}
		th.AssertFileExists(t, filepath)
	})

	t.Run("WriteJSONExport", func(t *testing.T) {
		tempDir := t.TempDir()
		originalDir := th.MustGetwd(t)
		th.MustChdir(t, tempDir)
		defer th.MustChdir(t, originalDir)

		filepath, err := WriteJSONExport(playlist, "")
		if err != nil {
			t.Fatalf("WriteJSONExport failed: %v", err)
		}

		if filepath != "playlist.json" {
			t.Errorf("Expected 'playlist.json', got '%s'", filepath)
		}
		th.AssertFileExists(t, filepath)

		content := th.MustReadFile(t, filepath)
		if !strings.Contains(content, `"from": "2001-01-02"`) {
			t.Errorf("JSON missing from field")
		}
	})

	t.Run("Write Dispatch", func(t *testing.T) {
		tempDir := t.TempDir()
		originalDir := th.MustGetwd(t)
		th.MustChdir(t, tempDir)
		defer th.MustChdir(t, originalDir)

		for format, want := range map[string]string{
			"text": "playlist.txt",
			"md":   "playlist.md",
			"csv":  "playlist_songs.csv",
			"json": "playlist.json",
		} {
			filepath, err := Write(playlist, format, "")
			if err != nil {
				t.Fatalf("Write(%s) failed: %v", format, err)
			}
			if filepath != want {
				t.Errorf("Write(%s): expected %s, got %s", format, want, filepath)
			}
		}

		if _, err := Write(playlist, "xml", ""); err == nil {
			t.Error("expected an error for unsupported format")
		}
	})
}
