// Package stations renders station lists, playlists, and search results
// for terminal output.
package stations

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tunerlab/pandora-cli/internal/application"
)

// RenderList renders the listener's station list.
func RenderList(list application.GetStationListResponse) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Stations"),
		s.header.Render(fmt.Sprintf("stations: %d", len(list.Stations))),
	}

	if len(list.Stations) == 0 {
		lines = append(lines, s.empty.Render("No stations on this account."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, station := range list.Stations {
		lines = append(lines, renderStation(station, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderStation(station application.Station, s styles) string {
	name := s.station.Render(station.StationName)
	if station.IsQuickMix {
		name = lipgloss.JoinHorizontal(lipgloss.Top, name, " ", s.quickMix.Render("[quickmix]"))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		name,
		s.token.Render("  token: "+station.StationToken),
	)
}

// RenderPlaylist renders one playlist fragment. Ad slots are shown but
// carry no track detail.
func RenderPlaylist(stationName string, playlist application.GetPlaylistResponse) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Playlist: " + stationName),
		s.header.Render(fmt.Sprintf("items: %d", len(playlist.Items))),
	}

	if len(playlist.Items) == 0 {
		lines = append(lines, s.empty.Render("The station returned no playable items."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, item := range playlist.Items {
		lines = append(lines, renderPlaylistItem(i+1, item, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPlaylistItem(position int, item application.PlaylistItem, s styles) string {
	if item.IsAd() {
		return s.adSlot.Render(fmt.Sprintf("%2d. (ad slot)", position))
	}

	line := s.detail.Render(fmt.Sprintf("%2d. %s", position, item.SongName))
	by := s.token.Render(fmt.Sprintf(" by %s (%s)", item.ArtistName, item.AlbumName))
	rating := ""
	if item.SongRating > 0 {
		rating = " " + s.positive.Render("+1")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, line, by, rating)
}

// RenderSearch renders music search matches with the tokens needed to
// seed new stations.
func RenderSearch(query string, results application.SearchResponse) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Search: " + query),
		s.header.Render(fmt.Sprintf("artists: %d, songs: %d", len(results.Artists), len(results.Songs))),
	}

	if len(results.Artists) == 0 && len(results.Songs) == 0 {
		lines = append(lines, s.empty.Render("No matches."))
		if results.Explanation != "" {
			lines = append(lines, s.detail.Render(results.Explanation))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	if len(results.Artists) > 0 {
		lines = append(lines, s.section.Render(s.header.Render("Artists")))
		for _, artist := range results.Artists {
			lines = append(lines, renderMatch(artist.ArtistName, artist.MusicToken, s))
		}
	}

	if len(results.Songs) > 0 {
		lines = append(lines, s.section.Render(s.header.Render("Songs")))
		for _, song := range results.Songs {
			lines = append(lines, renderMatch(fmt.Sprintf("%s by %s", song.SongName, song.ArtistName), song.MusicToken, s))
		}
	}

	if results.NearMatchesAvailable {
		lines = append(lines, s.empty.Render("Near matches available; refine the search to see them."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderMatch(label, musicToken string, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.detail.Render("  "+label),
		" ",
		s.token.Render("["+musicToken+"]"),
	)
}

// RenderGenres renders the genre station catalog grouped by category.
func RenderGenres(catalog application.GetGenreStationsResponse) string {
	s := newStyles()

	lines := []string{s.title.Render("Genre Stations")}

	if len(catalog.Categories) == 0 {
		lines = append(lines, s.empty.Render("No genre categories available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, category := range catalog.Categories {
		lines = append(lines, s.section.Render(s.station.Render(category.CategoryName)))
		for _, station := range category.Stations {
			lines = append(lines, renderMatch(station.StationName, station.StationToken, s))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
