package models

import (
	"fmt"
	"net/url"
)

// Entry is a normalized chart entry: a title/artist pair extracted from an
// upstream chart payload. Both fields are non-empty and whitespace-clean.
type Entry struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

// Song is one playlist entry: a chart entry tagged with its anniversary year
// and outbound search links. Immutable once built.
type Song struct {
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	Year    int    `json:"year"`
	YouTube string `json:"youtube"`
	Spotify string `json:"spotify"`
}

// Playlist is the full result of a build: songs in strictly increasing year
// order (chart rank order within a year) plus the resolved date range.
type Playlist struct {
	Songs []Song `json:"songs"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// NewSong builds a Song from a chart entry and its anniversary year,
// synthesizing both search links.
func NewSong(entry Entry, year int) Song {
	return Song{
		Title:   entry.Title,
		Artist:  entry.Artist,
		Year:    year,
		YouTube: YouTubeSearchURL(entry.Title, entry.Artist),
		Spotify: SpotifySearchURL(entry.Title, entry.Artist),
	}
}

// YouTubeSearchURL returns a YouTube search results link for "title artist".
//
// Search links open a results page rather than a canonical track: no music
// service lookup is performed.
func YouTubeSearchURL(title, artist string) string {
	q := url.QueryEscape(fmt.Sprintf("%s %s", title, artist))
	return "https://www.youtube.com/results?search_query=" + q
}

// SpotifySearchURL returns a Spotify search link for "title artist". The
// query lives in the URL path, so spaces are percent-encoded rather than
// turned into plus signs.
func SpotifySearchURL(title, artist string) string {
	q := url.PathEscape(fmt.Sprintf("%s %s", title, artist))
	return "https://open.spotify.com/search/" + q
}
