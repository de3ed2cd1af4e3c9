package fair

import (
	"strings"
	"testing"
)

func TestHashHex(t *testing.T) {
	got := HashHex([]byte("test"))
	want := "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"
	if got != want {
		t.Errorf("HashHex(\"test\") = %s, want %s", got, want)
	}
	if len(got) != 64 {
		t.Errorf("HashHex() length = %d, want 64", len(got))
	}
	if got != strings.ToLower(got) {
		t.Errorf("HashHex() not lowercase: %s", got)
	}
}

func TestHashHex_Deterministic(t *testing.T) {
	a := HashHex([]byte("seed123"))
	b := HashHex([]byte("seed123"))
	if a != b {
		t.Errorf("HashHex() not deterministic: %s vs %s", a, b)
	}
}

func TestVerifySeedHash(t *testing.T) {
	seeds := []string{"", "seed123", "a longer seed with spaces", "юникод"}
	for _, seed := range seeds {
		if !VerifySeedHash(seed, HashHex([]byte(seed))) {
			t.Errorf("VerifySeedHash(%q, own hash) = false, want true", seed)
		}
	}

	if VerifySeedHash("seed123", "wrong") {
		t.Error("VerifySeedHash() accepted a bogus hash")
	}
	if VerifySeedHash("seed123", HashHex([]byte("seed124"))) {
		t.Error("VerifySeedHash() accepted the hash of a different seed")
	}
}

func TestVerifySeedHash_CaseInsensitive(t *testing.T) {
	seed := "seed123"
	upper := strings.ToUpper(HashHex([]byte(seed)))
	if !VerifySeedHash(seed, upper) {
		t.Error("VerifySeedHash() rejected an uppercase claimed hash")
	}
}
