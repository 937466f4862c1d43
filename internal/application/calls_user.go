package application

import "context"

type GetStationListRequest struct {
	IncludeStationArtURL bool `json:"includeStationArtUrl"`
}

type GetStationListResponse struct {
	Stations []Station `json:"stations"`
	Checksum string    `json:"checksum"`
}

type GetBookmarksResponse struct {
	Artists []ArtistBookmark `json:"artists"`
	Songs   []SongBookmark   `json:"songs"`
}

type ArtistBookmark struct {
	BookmarkToken string `json:"bookmarkToken"`
	ArtistName    string `json:"artistName"`
	ArtURL        string `json:"artUrl"`
	DateCreated   Date   `json:"dateCreated"`
}

type SongBookmark struct {
	BookmarkToken string `json:"bookmarkToken"`
	SongName      string `json:"songName"`
	ArtistName    string `json:"artistName"`
	AlbumName     string `json:"albumName"`
	ArtURL        string `json:"artUrl"`
	DateCreated   Date   `json:"dateCreated"`
}

// Date is the service's timestamp object. Only the epoch field is kept;
// the rest of the object duplicates it in broken-out calendar fields.
type Date struct {
	Time int64 `json:"time"`
}

type CanSubscribeResponse struct {
	CanSubscribe bool `json:"canSubscribe"`
	IsSubscriber bool `json:"isSubscriber"`
}

// StationList fetches the listener's stations.
func (s *SessionService) StationList(ctx context.Context, includeArt bool) (GetStationListResponse, error) {
	var response GetStationListResponse
	err := s.Call(ctx, "user.getStationList", GetStationListRequest{IncludeStationArtURL: includeArt}, nil, true, &response)
	return response, err
}

// Bookmarks fetches the listener's saved song and artist bookmarks.
func (s *SessionService) Bookmarks(ctx context.Context) (GetBookmarksResponse, error) {
	var response GetBookmarksResponse
	err := s.Call(ctx, "user.getBookmarks", nil, nil, true, &response)
	return response, err
}

// CanSubscribe reports the listener's subscription eligibility.
func (s *SessionService) CanSubscribe(ctx context.Context) (CanSubscribeResponse, error) {
	var response CanSubscribeResponse
	err := s.Call(ctx, "user.canSubscribe", nil, nil, true, &response)
	return response, err
}
