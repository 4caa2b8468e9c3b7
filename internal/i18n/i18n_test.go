package i18n

import (
	"slices"
	"testing"
)

func TestTranslatesChrome(t *testing.T) {
	en, err := New("en")
	if err != nil {
		t.Fatalf("New(en): %v", err)
	}
	if got := en.T("title"); got != "Luminous Calculator" {
		t.Fatalf("unexpected english title %q", got)
	}
	de, err := New("de")
	if err != nil {
		t.Fatalf("New(de): %v", err)
	}
	if got := de.T("status_ready"); got != "Bereit" {
		t.Fatalf("unexpected german status %q", got)
	}
}

func TestFallsBackToEnglish(t *testing.T) {
	l, err := New("fr")
	if err != nil {
		t.Fatalf("New(fr): %v", err)
	}
	if got := l.T("subtitle"); got != "Dual precision" {
		t.Fatalf("expected english fallback, got %q", got)
	}
}

func TestUnknownIDReturnsID(t *testing.T) {
	l, err := New("en")
	if err != nil {
		t.Fatalf("New(en): %v", err)
	}
	if got := l.T("no_such_message"); got != "no_such_message" {
		t.Fatalf("expected id back, got %q", got)
	}
	var nilLocalizer *Localizer
	if got := nilLocalizer.T("title"); got != "title" {
		t.Fatalf("expected id back from nil localizer, got %q", got)
	}
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	if !slices.Contains(langs, "en") || !slices.Contains(langs, "de") {
		t.Fatalf("expected en and de, got %v", langs)
	}
}
