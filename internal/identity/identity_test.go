package identity

import "testing"

func TestParseKeys(t *testing.T) {
	keys := ParseKeys("k_alice:alice, k_bob:bob ,broken,:noid,nokey:")
	if len(keys) != 2 {
		t.Fatalf("want 2 valid entries, got %d: %+v", len(keys), keys)
	}
	if owner, ok := keys.OwnerForKey("k_alice"); !ok || owner != "alice" {
		t.Fatalf("k_alice: got %q %v", owner, ok)
	}
	if owner, ok := keys.OwnerForKey("k_bob"); !ok || owner != "bob" {
		t.Fatalf("k_bob: got %q %v", owner, ok)
	}
}

func TestOwnerForKey_Unknown(t *testing.T) {
	keys := ParseKeys("k:alice")
	if _, ok := keys.OwnerForKey("other"); ok {
		t.Fatalf("unknown key must not resolve")
	}
	if _, ok := keys.OwnerForKey(""); ok {
		t.Fatalf("empty key must not resolve")
	}
}
