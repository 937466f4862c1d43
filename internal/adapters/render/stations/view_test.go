package stations

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tunerlab/pandora-cli/internal/application"
)

func TestRenderListEmpty(t *testing.T) {
	out := RenderList(application.GetStationListResponse{})
	assert.Contains(t, out, "Stations")
	assert.Contains(t, out, "stations: 0")
	assert.Contains(t, out, "No stations on this account.")
}

func TestRenderListShowsTokensAndQuickMix(t *testing.T) {
	out := RenderList(application.GetStationListResponse{
		Stations: []application.Station{
			{StationToken: "st-1", StationName: "Jazz", IsQuickMix: false},
			{StationToken: "st-2", StationName: "Shuffle", IsQuickMix: true},
		},
	})

	assert.Contains(t, out, "Jazz")
	assert.Contains(t, out, "st-1")
	assert.Contains(t, out, "Shuffle")
	assert.Contains(t, out, "[quickmix]")
}

func TestRenderPlaylistMarksAdSlots(t *testing.T) {
	out := RenderPlaylist("Jazz", application.GetPlaylistResponse{
		Items: []application.PlaylistItem{
			{TrackToken: "tr-1", SongName: "Goodbye Pork Pie Hat", ArtistName: "Charles Mingus", AlbumName: "Mingus Ah Um"},
			{AdToken: "ad-1"},
		},
	})

	assert.Contains(t, out, "Goodbye Pork Pie Hat")
	assert.Contains(t, out, "Charles Mingus")
	assert.Contains(t, out, "(ad slot)")
}

func TestRenderSearchGroupsMatches(t *testing.T) {
	out := RenderSearch("mingus", application.SearchResponse{
		Artists: []application.ArtistMatch{{MusicToken: "R123", ArtistName: "Charles Mingus"}},
		Songs:   []application.SongMatch{{MusicToken: "S456", SongName: "Moanin'", ArtistName: "Charles Mingus"}},
	})

	assert.Contains(t, out, "Search: mingus")
	assert.Contains(t, out, "Artists")
	assert.Contains(t, out, "Songs")
	assert.Contains(t, out, "R123")
	assert.Contains(t, out, "S456")
}

func TestRenderSearchNoMatches(t *testing.T) {
	out := RenderSearch("xyzzy", application.SearchResponse{Explanation: "no results"})
	assert.Contains(t, out, "No matches.")
	assert.Contains(t, out, "no results")
}

func TestRenderGenres(t *testing.T) {
	out := RenderGenres(application.GetGenreStationsResponse{
		Categories: []application.GenreCategory{
			{CategoryName: "Jazz", Stations: []application.GenreStation{{StationToken: "G1", StationName: "Bebop"}}},
		},
	})

	assert.Contains(t, out, "Genre Stations")
	assert.Contains(t, out, "Jazz")
	assert.Contains(t, out, "Bebop")
	assert.Contains(t, out, "G1")
}
