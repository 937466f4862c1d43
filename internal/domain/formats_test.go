package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunerlab/pandora-cli/internal/domain"
)

func TestParseAudioFormat(t *testing.T) {
	format, err := domain.ParseAudioFormat("HTTP_64_AACPLUS")
	require.NoError(t, err)
	assert.Equal(t, domain.AudioAacPlus64, format)

	_, err = domain.ParseAudioFormat("HTTP_512_FLAC")
	assert.ErrorIs(t, err, domain.ErrUnsupportedAudioFormat)
}

func TestAudioFormatFromURLMap(t *testing.T) {
	tests := []struct {
		encoding string
		bitrate  string
		want     domain.AudioFormat
		wantErr  bool
	}{
		{"aac", "64", domain.AudioAacPlus64, false},
		{"aacplus", "32", domain.AudioAacPlus32, false},
		{"aacplus", "64", domain.AudioAacPlus64, false},
		{"mp3", "128", "", true},
		{"", "", "", true},
	}
	for _, tc := range tests {
		got, err := domain.AudioFormatFromURLMap(tc.encoding, tc.bitrate)
		if tc.wantErr {
			assert.ErrorIs(t, err, domain.ErrUnsupportedAudioFormat, "%s/%s", tc.encoding, tc.bitrate)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseGender(t *testing.T) {
	for _, valid := range []string{"male", "female"} {
		gender, err := domain.ParseGender(valid)
		require.NoError(t, err)
		assert.Equal(t, domain.Gender(valid), gender)
	}

	_, err := domain.ParseGender("Male")
	assert.ErrorIs(t, err, domain.ErrUnsupportedGender)
}
