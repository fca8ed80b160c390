package gravatar

import (
	"strings"
	"testing"
)

func TestURL_Deterministic(t *testing.T) {
	a := URL("ada@example.com")
	b := URL("ada@example.com")
	if a != b {
		t.Fatalf("expected identical URLs, got %q and %q", a, b)
	}
}

func TestURL_NormalizesEmail(t *testing.T) {
	if URL("  Ada@Example.COM ") != URL("ada@example.com") {
		t.Fatalf("case and whitespace should not change the avatar")
	}
}

func TestURL_Shape(t *testing.T) {
	u := URL("ada@example.com")
	if !strings.HasPrefix(u, "https://www.gravatar.com/avatar/") {
		t.Fatalf("unexpected prefix: %q", u)
	}
	if !strings.HasSuffix(u, "?s=200&r=pg&d=mm") {
		t.Fatalf("unexpected options: %q", u)
	}
}
