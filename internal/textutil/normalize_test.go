package textutil

import "testing"

func TestNormalizeStripsPunctuationAndCase(t *testing.T) {
	got := Normalize("  Pizza,  MARGHERITA!!  ")
	if got != "pizza margherita" {
		t.Fatalf("expected 'pizza margherita', got %q", got)
	}
}

func TestNormalizeKeepsArabicLetters(t *testing.T) {
	got := Normalize("بيتزا كبيرة")
	if got != "بيتزا كبيرة" {
		t.Fatalf("arabic text mangled: %q", got)
	}
}

func TestExtractSizeLargeWinsOnAmbiguity(t *testing.T) {
	size, rest := ExtractSize("pizza sghira kbira")
	if size != SizeLarge {
		t.Fatalf("expected large to win, got %q", size)
	}
	if rest != "pizza sghira" {
		t.Fatalf("expected large keyword stripped, got %q", rest)
	}
}

func TestExtractSizeSmall(t *testing.T) {
	size, rest := ExtractSize("tacos petit")
	if size != SizeSmall {
		t.Fatalf("expected small, got %q", size)
	}
	if rest != "tacos" {
		t.Fatalf("expected 'tacos', got %q", rest)
	}
}

func TestExtractSizeNone(t *testing.T) {
	size, rest := ExtractSize("panini poulet")
	if size != SizeNone || rest != "panini poulet" {
		t.Fatalf("expected passthrough, got %q %q", size, rest)
	}
}

func TestContainsArabic(t *testing.T) {
	if !ContainsArabic("سلام") {
		t.Fatal("expected arabic detection")
	}
	if ContainsArabic("salam") {
		t.Fatal("latin text flagged as arabic")
	}
}
