package auth

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

// basicPrefix is matched exactly; "basic " or "Bearer " do not qualify.
const basicPrefix = "Basic "

// ExtractBasicToken returns the base64 payload of a Basic authorization
// header value. Malformed input yields ok=false, never an error.
func ExtractBasicToken(header string) (string, bool) {
	if !strings.HasPrefix(header, basicPrefix) {
		return "", false
	}
	return header[len(basicPrefix):], true
}

// DecodeBasicToken base64-decodes a token. Tokens that do not decode, or
// decode to something that is not valid text, yield ok=false.
func DecodeBasicToken(token string) (string, bool) {
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil || !utf8.Valid(decoded) {
		return "", false
	}
	return string(decoded), true
}

// SplitCredentials splits a decoded "identity:secret" pair on the first
// colon only, so the secret may itself contain colons.
func SplitCredentials(decoded string) (identity, secret string, ok bool) {
	identity, secret, ok = strings.Cut(decoded, ":")
	if !ok {
		return "", "", false
	}
	return identity, secret, true
}

// BasicCredentials chains extraction, decoding and splitting; any failed
// stage short-circuits to ok=false with no partial result.
func BasicCredentials(header string) (identity, secret string, ok bool) {
	token, ok := ExtractBasicToken(header)
	if !ok {
		return "", "", false
	}
	decoded, ok := DecodeBasicToken(token)
	if !ok {
		return "", "", false
	}
	return SplitCredentials(decoded)
}
