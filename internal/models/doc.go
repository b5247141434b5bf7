// Package models defines domain entities for the birthday playlist service.
//
// The types here are plain data carriers shared by every layer:
//
//   - [Entry] : a normalized title/artist pair extracted from a chart payload
//   - [Song] : an entry tagged with its anniversary year and search links
//   - [Playlist] : the ordered result of a build with its resolved date range
//
// Nothing in this package touches the network or the filesystem; link
// synthesis ([YouTubeSearchURL], [SpotifySearchURL]) is deterministic string
// construction.
package models
