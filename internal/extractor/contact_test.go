package extractor

import (
	"regexp"
	"testing"
)

func TestExtractName_FirstPlausibleLine(t *testing.T) {
	text := "Rahul Sharma\nrahul.sharma@example.com\n+91-9876543210"
	if got := ExtractName(text); got != "Rahul Sharma" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractName_SkipsHeaderAndRoleLines(t *testing.T) {
	text := "RESUME\nSenior Software Engineer\nAnita Desai\nBangalore"
	if got := ExtractName(text); got != "Anita Desai" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractName_Unresolved(t *testing.T) {
	text := "objective\nsummary of qualifications\n12345"
	if got := ExtractName(text); got != "" {
		t.Fatalf("expected empty name, got %q", got)
	}
}

func TestExtractEmails_DedupKeepsFirstOccurrence(t *testing.T) {
	text := "a@x.com b@y.org a@x.com"
	got := ExtractEmails(text)
	if len(got) != 2 || got[0] != "a@x.com" || got[1] != "b@y.org" {
		t.Fatalf("got %v", got)
	}
}

func TestExtractPhones_DedupAcrossFormats(t *testing.T) {
	text := "Phone: +91-9876543210 Mobile: 9876543210"
	got := ExtractPhones(text, "IN")
	if len(got) != 1 {
		t.Fatalf("expected one deduplicated number, got %v", got)
	}
	digits := regexp.MustCompile(`\D`).ReplaceAllString(got[0], "")
	if digits != "919876543210" {
		t.Fatalf("got digits %q", digits)
	}
}

func TestExtractPhones_PrefixFragmentCollapses(t *testing.T) {
	// The looser patterns also hit "1-9876543210" inside the full number;
	// that fragment must not surface as a second entry.
	got := ExtractPhones("Reach me at +91-9876543210", "IN")
	if len(got) != 1 {
		t.Fatalf("expected one number, got %v", got)
	}
}

func TestExtractPhones_TooShortRejected(t *testing.T) {
	if got := ExtractPhones("call 555-1234", "US"); len(got) != 0 {
		t.Fatalf("expected no numbers, got %v", got)
	}
}
