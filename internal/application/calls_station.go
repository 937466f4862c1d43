package application

import (
	"context"

	"github.com/tunerlab/pandora-cli/internal/domain"
)

// Station is the station record shared by the list, create, and rename
// endpoints. StationToken is the handle every other station call takes.
type Station struct {
	StationID    string `json:"stationId"`
	StationToken string `json:"stationToken"`
	StationName  string `json:"stationName"`
	IsQuickMix   bool   `json:"isQuickMix"`
	ArtURL       string `json:"artUrl"`
}

type GetPlaylistRequest struct {
	StationToken string `json:"stationToken"`
}

type GetPlaylistResponse struct {
	Items []PlaylistItem `json:"items"`
}

// PlaylistItem is either a track or an ad slot. Ad slots carry only
// AdToken; track fields are empty for them and vice versa.
type PlaylistItem struct {
	TrackToken  string                 `json:"trackToken"`
	SongName    string                 `json:"songName"`
	ArtistName  string                 `json:"artistName"`
	AlbumName   string                 `json:"albumName"`
	SongRating  int                    `json:"songRating"`
	AudioURLMap map[string]AudioStream `json:"audioUrlMap"`
	AdToken     string                 `json:"adToken"`
}

// IsAd reports whether this slot is an ad rather than a track.
func (p PlaylistItem) IsAd() bool {
	return p.AdToken != "" && p.TrackToken == ""
}

type AudioStream struct {
	AudioURL string `json:"audioUrl"`
	Bitrate  string `json:"bitrate"`
	Encoding string `json:"encoding"`
}

// Format resolves the stream's wire audio format from its encoding and
// bitrate pair.
func (a AudioStream) Format() (domain.AudioFormat, error) {
	return domain.AudioFormatFromURLMap(a.Encoding, a.Bitrate)
}

type CreateStationRequest struct {
	MusicToken string `json:"musicToken,omitempty"`
	TrackToken string `json:"trackToken,omitempty"`
	MusicType  string `json:"musicType,omitempty"`
}

type RenameStationRequest struct {
	StationToken string `json:"stationToken"`
	StationName  string `json:"stationName"`
}

type DeleteStationRequest struct {
	StationToken string `json:"stationToken"`
}

type AddFeedbackRequest struct {
	StationToken string `json:"stationToken"`
	TrackToken   string `json:"trackToken"`
	IsPositive   bool   `json:"isPositive"`
}

type AddFeedbackResponse struct {
	FeedbackID string `json:"feedbackId"`
	IsPositive bool   `json:"isPositive"`
	SongName   string `json:"songName"`
	ArtistName string `json:"artistName"`
}

type GetGenreStationsResponse struct {
	Categories []GenreCategory `json:"categories"`
}

type GenreCategory struct {
	CategoryName string         `json:"categoryName"`
	Stations     []GenreStation `json:"stations"`
}

type GenreStation struct {
	StationToken string `json:"stationToken"`
	StationName  string `json:"stationName"`
}

// Playlist fetches the next batch of playable items for a station.
func (s *SessionService) Playlist(ctx context.Context, stationToken string, options map[string]any) (GetPlaylistResponse, error) {
	var response GetPlaylistResponse
	err := s.Call(ctx, "station.getPlaylist", GetPlaylistRequest{StationToken: stationToken}, options, true, &response)
	return response, err
}

// CreateStation seeds a new station from a music token returned by search
// or from a track token plus music type ("song" or "artist").
func (s *SessionService) CreateStation(ctx context.Context, request CreateStationRequest) (Station, error) {
	var response Station
	err := s.Call(ctx, "station.createStation", request, nil, true, &response)
	return response, err
}

func (s *SessionService) RenameStation(ctx context.Context, stationToken, name string) (Station, error) {
	var response Station
	err := s.Call(ctx, "station.renameStation", RenameStationRequest{StationToken: stationToken, StationName: name}, nil, true, &response)
	return response, err
}

func (s *SessionService) DeleteStation(ctx context.Context, stationToken string) error {
	return s.Call(ctx, "station.deleteStation", DeleteStationRequest{StationToken: stationToken}, nil, true, nil)
}

// AddFeedback records a thumbs-up or thumbs-down for a track on a station.
func (s *SessionService) AddFeedback(ctx context.Context, stationToken, trackToken string, positive bool) (AddFeedbackResponse, error) {
	var response AddFeedbackResponse
	request := AddFeedbackRequest{StationToken: stationToken, TrackToken: trackToken, IsPositive: positive}
	err := s.Call(ctx, "station.addFeedback", request, nil, true, &response)
	return response, err
}

func (s *SessionService) GenreStations(ctx context.Context) (GetGenreStationsResponse, error) {
	var response GetGenreStationsResponse
	err := s.Call(ctx, "station.getGenreStations", nil, nil, true, &response)
	return response, err
}
