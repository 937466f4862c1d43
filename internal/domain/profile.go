package domain

import "fmt"

// DeviceKind names a device persona in the credential catalog.
type DeviceKind string

const (
	DeviceAndroid       DeviceKind = "android"
	DeviceIOS           DeviceKind = "ios"
	DevicePalm          DeviceKind = "palm"
	DeviceWindowsMobile DeviceKind = "winmo"
	DeviceDesktopAir    DeviceKind = "air"
	DeviceVistaWidget   DeviceKind = "widget"
)

// Profile is one complete device persona: the partner credentials used to
// authenticate the application itself (distinct from the listener's
// account), the cipher key pair, and the endpoint host to talk to.
type Profile struct {
	Device      DeviceKind
	Username    string
	Password    string
	DeviceModel string
	Version     string
	EncryptKey  string
	DecryptKey  string
	// EndpointHost is a bare hostname; EndpointURL combines it with the
	// scheme and service path.
	EndpointHost string
}

// The partner credentials below are the published per-device constants the
// service hands out to client applications. They are not account secrets.
var profiles = map[DeviceKind]Profile{
	DeviceAndroid: {
		Device:       DeviceAndroid,
		Username:     "android",
		Password:     "AC7IBG09A3DTSYM4R41UJWL07VLN8JI7",
		DeviceModel:  "android-generic",
		Version:      "5",
		EncryptKey:   "6#26FRL$ZWD",
		DecryptKey:   "R=U!LH$O2B#",
		EndpointHost: "tuner.pandora.com",
	},
	DeviceIOS: {
		Device:       DeviceIOS,
		Username:     "iphone",
		Password:     "P2E4FC0EAD3*878N92B2CDp34I0B1@388137C",
		DeviceModel:  "IP01",
		Version:      "5",
		EncryptKey:   "721^26xE22776",
		DecryptKey:   "20zE1E47BE57$51",
		EndpointHost: "tuner.pandora.com",
	},
	DevicePalm: {
		Device:       DevicePalm,
		Username:     "palm",
		Password:     "IUC7IBG09A3JTSYM4N11UJWL07VLH8JP0",
		DeviceModel:  "pre",
		Version:      "5",
		EncryptKey:   "%526CBL$ZU3",
		DecryptKey:   "E#U$MY$O2B=",
		EndpointHost: "tuner.pandora.com",
	},
	DeviceWindowsMobile: {
		Device:       DeviceWindowsMobile,
		Username:     "winmo",
		Password:     "ED227E10a628EB0E8Pm825Dw7114AC39",
		DeviceModel:  "VERIZON_MOTOQ9C",
		Version:      "5",
		EncryptKey:   "v93C8C2s12E0EBD",
		DecryptKey:   "7D671jt0C5E5d251",
		EndpointHost: "tuner.pandora.com",
	},
	DeviceDesktopAir: {
		Device:       DeviceDesktopAir,
		Username:     "pandora one",
		Password:     "TVCKIBGS9AO9TSYLNNFUML0743LH82D",
		DeviceModel:  "D01",
		Version:      "5",
		EncryptKey:   "2%3WCL*JU$MP]4",
		DecryptKey:   "U#IO$RZPAB%VX2",
		EndpointHost: "internal-tuner.pandora.com",
	},
	DeviceVistaWidget: {
		Device:       DeviceVistaWidget,
		Username:     "windowsgadget",
		Password:     "EVCCIBGS9AOJTSYMNNFUML07VLH8JYP0",
		DeviceModel:  "WG01",
		Version:      "5",
		EncryptKey:   "%22CML*ZU$8YXP[1",
		DecryptKey:   "E#IO$MYZOAB%FVR2",
		EndpointHost: "internal-tuner.pandora.com",
	},
}

// ProfileFor looks up the catalog entry for a device kind.
func ProfileFor(kind DeviceKind) (Profile, error) {
	profile, ok := profiles[kind]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownDevice, kind)
	}
	return profile, nil
}

// DefaultProfile returns the android persona, which has historically been
// the least restricted.
func DefaultProfile() Profile {
	return profiles[DeviceAndroid]
}

// DeviceKinds lists the catalog's device kinds in a stable order.
func DeviceKinds() []DeviceKind {
	return []DeviceKind{
		DeviceAndroid,
		DeviceIOS,
		DevicePalm,
		DeviceWindowsMobile,
		DeviceDesktopAir,
		DeviceVistaWidget,
	}
}

// EndpointURL returns the full JSON service URL for this profile's host.
func (p Profile) EndpointURL() string {
	return fmt.Sprintf("https://%s/services/json", p.EndpointHost)
}

// BeginSession returns fresh session state keyed for this profile. No
// network I/O happens here.
func (p Profile) BeginSession() SessionTokens {
	return *NewSessionTokens(p.EncryptKey, p.DecryptKey)
}
