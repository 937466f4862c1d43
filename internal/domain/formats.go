package domain

import "fmt"

// AudioFormat is an audio stream format accepted in the playlist call's
// additionalAudioUrl argument, in its wire spelling.
type AudioFormat string

const (
	AudioAacMono40     AudioFormat = "HTTP_40_AAC_MONO"
	AudioAac64         AudioFormat = "HTTP_64_AAC"
	AudioAacPlus32     AudioFormat = "HTTP_32_AACPLUS"
	AudioAacPlus64     AudioFormat = "HTTP_64_AACPLUS"
	AudioAacPlusAdts24 AudioFormat = "HTTP_24_AACPLUS_ADTS"
	AudioAacPlusAdts32 AudioFormat = "HTTP_32_AACPLUS_ADTS"
	AudioAacPlusAdts64 AudioFormat = "HTTP_64_AACPLUS_ADTS"
	AudioMp3128        AudioFormat = "HTTP_128_MP3"
	AudioWma32         AudioFormat = "HTTP_32_WMA"
)

var audioFormats = map[AudioFormat]struct{}{
	AudioAacMono40:     {},
	AudioAac64:         {},
	AudioAacPlus32:     {},
	AudioAacPlus64:     {},
	AudioAacPlusAdts24: {},
	AudioAacPlusAdts32: {},
	AudioAacPlusAdts64: {},
	AudioMp3128:        {},
	AudioWma32:         {},
}

// ParseAudioFormat validates a caller-supplied format string. This is a
// local check; nothing is sent to the server.
func ParseAudioFormat(s string) (AudioFormat, error) {
	format := AudioFormat(s)
	if _, ok := audioFormats[format]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAudioFormat, s)
	}
	return format, nil
}

// AudioFormatFromURLMap determines the format from the encoding and
// bitrate fields of a playlist track's audioUrlMap entry.
func AudioFormatFromURLMap(encoding, bitrate string) (AudioFormat, error) {
	switch {
	case encoding == "aac" && bitrate == "64":
		return AudioAacPlus64, nil
	case encoding == "aacplus" && bitrate == "32":
		return AudioAacPlus32, nil
	case encoding == "aacplus" && bitrate == "64":
		return AudioAacPlus64, nil
	default:
		return "", fmt.Errorf("%w: %s/%s", ErrUnsupportedAudioFormat, encoding, bitrate)
	}
}

// Gender is the listener gender value accepted by account management
// calls. The service accepts exactly two spellings.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ParseGender validates a caller-supplied gender string locally.
func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMale, GenderFemale:
		return Gender(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedGender, s)
	}
}
