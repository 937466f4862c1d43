package application

import "context"

type SearchRequest struct {
	SearchText         string `json:"searchText"`
	IncludeNearMatches bool   `json:"includeNearMatches"`
}

type SearchResponse struct {
	Songs                []SongMatch   `json:"songs"`
	Artists              []ArtistMatch `json:"artists"`
	NearMatchesAvailable bool          `json:"nearMatchesAvailable"`
	Explanation          string        `json:"explanation"`
}

// SongMatch and ArtistMatch both carry a MusicToken usable as a station
// seed with station.createStation.
type SongMatch struct {
	MusicToken string `json:"musicToken"`
	SongName   string `json:"songName"`
	ArtistName string `json:"artistName"`
	Score      int    `json:"score"`
}

type ArtistMatch struct {
	MusicToken  string `json:"musicToken"`
	ArtistName  string `json:"artistName"`
	LikelyMatch bool   `json:"likelyMatch"`
	Score       int    `json:"score"`
}

type addBookmarkRequest struct {
	TrackToken string `json:"trackToken"`
}

type SongBookmarkResponse struct {
	BookmarkToken string `json:"bookmarkToken"`
	SongName      string `json:"songName"`
	ArtistName    string `json:"artistName"`
	AlbumName     string `json:"albumName"`
	ArtURL        string `json:"artUrl"`
}

type ArtistBookmarkResponse struct {
	BookmarkToken string `json:"bookmarkToken"`
	ArtistName    string `json:"artistName"`
	ArtURL        string `json:"artUrl"`
}

type CheckLicensingResponse struct {
	IsAllowed bool `json:"isAllowed"`
}

// Search looks up songs and artists matching the text.
func (s *SessionService) Search(ctx context.Context, text string, includeNearMatches bool) (SearchResponse, error) {
	var response SearchResponse
	request := SearchRequest{SearchText: text, IncludeNearMatches: includeNearMatches}
	err := s.Call(ctx, "music.search", request, nil, false, &response)
	return response, err
}

func (s *SessionService) AddSongBookmark(ctx context.Context, trackToken string) (SongBookmarkResponse, error) {
	var response SongBookmarkResponse
	err := s.Call(ctx, "bookmark.addSongBookmark", addBookmarkRequest{TrackToken: trackToken}, nil, false, &response)
	return response, err
}

func (s *SessionService) AddArtistBookmark(ctx context.Context, trackToken string) (ArtistBookmarkResponse, error) {
	var response ArtistBookmarkResponse
	err := s.Call(ctx, "bookmark.addArtistBookmark", addBookmarkRequest{TrackToken: trackToken}, nil, false, &response)
	return response, err
}

// CheckLicensing asks whether playback is licensed for the caller's
// region. It needs no session state and no encryption.
func (s *SessionService) CheckLicensing(ctx context.Context) (CheckLicensingResponse, error) {
	var response CheckLicensingResponse
	err := s.Call(ctx, "test.checkLicensing", nil, nil, false, &response)
	return response, err
}
