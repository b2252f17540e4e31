package shortener

import (
	"strings"
	"testing"
)

func TestGenerateSecureSlug_InvalidLength(t *testing.T) {
	t.Parallel()

	if _, err := GenerateSecureSlug(0); err == nil {
		t.Fatalf("expected error for invalid length")
	}
}

func TestGenerateSecureSlug_LengthAndAlphabet(t *testing.T) {
	t.Parallel()

	slug, err := GenerateSecureSlug(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slug) != 10 {
		t.Fatalf("expected slug length 10, got %d", len(slug))
	}

	for i := 0; i < len(slug); i++ {
		if strings.IndexByte(alphabet, slug[i]) == -1 {
			t.Fatalf("slug contains invalid character %q", slug[i])
		}
	}
}

func TestEncodeDecodeID_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, id := range []uint{0, 1, 61, 62, 12345, 987654321} {
		encoded := EncodeID(id)
		if encoded == "" {
			t.Fatalf("empty share code for id %d", id)
		}
		if got := DecodeID(encoded); got != id {
			t.Fatalf("round trip failed for %d: encoded %q decoded %d", id, encoded, got)
		}
	}
}

func TestDecodeID_SkipsInvalidCharacters(t *testing.T) {
	t.Parallel()

	if DecodeID("1-0") != DecodeID("10") {
		t.Fatalf("expected invalid characters to be skipped")
	}
}
