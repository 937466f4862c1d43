// Package crypt implements the Blowfish-ECB framing used by the Pandora
// JSON API: request bodies are padded, encrypted block by block, and sent
// as lowercase hexadecimal; certain response fields come back the same way.
package crypt

import (
	"encoding/hex"
	"strconv"

	"golang.org/x/crypto/blowfish"
)

const (
	// paddingByte is appended to plaintext until it fills a whole block.
	// The server uses the same value to mark the end of real payload.
	paddingByte = 0x02
	blockLen    = blowfish.BlockSize
)

// Encrypt pads input to a multiple of the Blowfish block size with
// paddingByte, encrypts each block independently (ECB, no IV), and returns
// the ciphertext as a lowercase hex string.
//
// An unusable key length is a programming error and panics.
func Encrypt(key, input string) string {
	cipher, err := blowfish.NewCipher([]byte(key))
	if err != nil {
		panic("crypt: invalid key: " + err.Error())
	}

	padded := pad([]byte(input))
	out := make([]byte, len(padded))
	for i := 0; i < len(padded); i += blockLen {
		cipher.Encrypt(out[i:i+blockLen], padded[i:i+blockLen])
	}

	return hex.EncodeToString(out)
}

// Decrypt reverses Encrypt: it decodes the hex input two characters at a
// time, decrypts each block, and truncates at the first paddingByte found.
//
// Two wire quirks are deliberately preserved:
//   - a malformed hex pair decodes to byte 0 instead of failing, which can
//     silently corrupt the output;
//   - the padding scan truncates at the first 0x02 anywhere in the buffer,
//     so payloads legitimately containing that byte are cut short.
//
// A wrong key is not detectable here; it just produces garbage.
func Decrypt(key, hexInput string) []byte {
	cipher, err := blowfish.NewCipher([]byte(key))
	if err != nil {
		panic("crypt: invalid key: " + err.Error())
	}

	raw := lenientHexDecode(hexInput)
	// Drop a trailing partial block rather than panic on short input.
	raw = raw[:len(raw)-len(raw)%blockLen]

	out := make([]byte, len(raw))
	for i := 0; i < len(raw); i += blockLen {
		cipher.Decrypt(out[i:i+blockLen], raw[i:i+blockLen])
	}

	for i, b := range out {
		if b == paddingByte {
			return out[:i]
		}
	}

	return out
}

func pad(input []byte) []byte {
	remainder := len(input) % blockLen
	if remainder == 0 {
		return input
	}

	padded := make([]byte, len(input), len(input)+blockLen-remainder)
	copy(padded, input)
	for len(padded)%blockLen != 0 {
		padded = append(padded, paddingByte)
	}

	return padded
}

func lenientHexDecode(input string) []byte {
	out := make([]byte, 0, (len(input)+1)/2)
	for i := 0; i < len(input); i += 2 {
		end := i + 2
		if end > len(input) {
			end = len(input)
		}

		b, err := strconv.ParseUint(input[i:end], 16, 8)
		if err != nil {
			b = 0
		}
		out = append(out, byte(b))
	}

	return out
}
