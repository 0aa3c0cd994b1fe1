package identity

import "strings"

// Provider resolves a presented API key to a stable owner id. The core trusts
// whatever id comes out of here; it never consults ambient session state.
type Provider interface {
	OwnerForKey(key string) (ownerID string, ok bool)
}

// StaticKeys maps API key -> owner id, loaded from configuration.
type StaticKeys map[string]string

var _ Provider = StaticKeys(nil)

func (s StaticKeys) OwnerForKey(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	owner, ok := s[key]
	return owner, ok
}

// ParseKeys parses "key1:alice,key2:bob" into a StaticKeys map.
// Malformed entries are skipped.
func ParseKeys(raw string) StaticKeys {
	out := make(StaticKeys)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		k, owner, ok := strings.Cut(pair, ":")
		k, owner = strings.TrimSpace(k), strings.TrimSpace(owner)
		if !ok || k == "" || owner == "" {
			continue
		}
		out[k] = owner
	}
	return out
}
