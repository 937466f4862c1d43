package application

// PartnerLoginRequest carries the device partner credentials from the
// selected profile. It is the only authenticated call sent in the clear.
type PartnerLoginRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DeviceModel string `json:"deviceModel"`
	Version     string `json:"version"`
}

// PartnerLoginResponse returns the partner token pair and the encrypted
// server sync time. SyncTime stays opaque here; SessionTokens decrypts it
// during the token merge.
type PartnerLoginResponse struct {
	PartnerID        string `json:"partnerId"`
	PartnerAuthToken string `json:"partnerAuthToken"`
	SyncTime         string `json:"syncTime"`
	StationSkipLimit int    `json:"stationSkipLimit"`
	StationSkipUnit  string `json:"stationSkipUnit"`
}

type UserLoginRequest struct {
	LoginType string `json:"loginType"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

type UserLoginResponse struct {
	UserID             string `json:"userId"`
	UserAuthToken      string `json:"userAuthToken"`
	Username           string `json:"username"`
	CanListen          bool   `json:"canListen"`
	HasAudioAds        bool   `json:"hasAudioAds"`
	MaxStationsAllowed int    `json:"maxStationsAllowed"`
}
