package icons

import (
	"errors"
	"strings"
	"testing"
)

func TestSymbolID(t *testing.T) {
	if got := SymbolID("check"); got != "lucide-check" {
		t.Fatalf("SymbolID = %q", got)
	}
}

func TestSpriteSelectsSortedUniqueIcons(t *testing.T) {
	sprite, err := Sprite("x", "check", "X", "check")
	if err != nil {
		t.Fatalf("sprite: %v", err)
	}
	if got := strings.Count(sprite, "<symbol "); got != 2 {
		t.Fatalf("expected 2 symbols, got %d: %s", got, sprite)
	}
	check := strings.Index(sprite, `id="lucide-check"`)
	x := strings.Index(sprite, `id="lucide-x"`)
	if check < 0 || x < 0 || check > x {
		t.Fatalf("expected check before x: %s", sprite)
	}
	if !strings.Contains(sprite, `<symbol id="lucide-check" viewBox="0 0 24 24" fill="none" stroke="currentColor"`) {
		t.Fatalf("unexpected symbol attributes: %s", sprite)
	}
	if !strings.Contains(sprite, `<polyline points="20 6 9 17 4 12"></polyline>`) {
		t.Fatalf("missing check fragment: %s", sprite)
	}
}

func TestSpriteDefaultsToWholeCatalog(t *testing.T) {
	sprite, err := Sprite()
	if err != nil {
		t.Fatalf("sprite: %v", err)
	}
	if got := strings.Count(sprite, "<symbol "); got != len(Names()) {
		t.Fatalf("expected %d symbols, got %d", len(Names()), got)
	}
	again, _ := Sprite()
	if sprite != again {
		t.Fatal("expected deterministic sprite output")
	}
}

func TestSpriteUnknownIcon(t *testing.T) {
	if _, err := Sprite("check", "missing"); !errors.Is(err, ErrUnknownIcon) {
		t.Fatalf("expected ErrUnknownIcon, got %v", err)
	}
}
