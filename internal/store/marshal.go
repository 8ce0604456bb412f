package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"
)

// DomainConversion prefixes the hashed content of a conversion ID.
// The version suffix allows the identity scheme to change later.
const DomainConversion = "crkortho/conversion/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null byte keeps domain and data from running together.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// canonicalJSON marshals v with sorted map keys and without HTML escaping,
// so that the same value always hashes the same way.
func canonicalJSON(v any) ([]byte, error) {
	return json.MarshalWithOption(v, json.DisableHTMLEscape())
}

// ConversionID computes the content-addressed ID of a conversion. The output
// is excluded: it is what replay checks, not part of what was asked for.
func ConversionID(session string, seq int64, direction Direction, opts Options, input string) (string, error) {
	obj := map[string]any{
		"session":   session,
		"seq":       seq,
		"direction": string(direction),
		"options": map[string]any{
			"hyphens": opts.Hyphens,
			"sandhi":  opts.Sandhi,
			"macrons": opts.Macrons,
		},
		"input": input,
	}

	canonical, err := canonicalJSON(obj)
	if err != nil {
		return "", fmt.Errorf("ConversionID: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainConversion, canonical), nil
}

func marshalOptions(opts Options) (string, error) {
	data, err := canonicalJSON(opts)
	if err != nil {
		return "", fmt.Errorf("marshal options: %w", err)
	}
	return string(data), nil
}

func unmarshalOptions(data string) (Options, error) {
	var opts Options
	if data == "" || data == "{}" {
		return opts, nil
	}
	if err := json.Unmarshal([]byte(data), &opts); err != nil {
		return Options{}, fmt.Errorf("unmarshal options: %w", err)
	}
	return opts, nil
}
