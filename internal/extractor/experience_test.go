package extractor

import "testing"

func TestExtractExperienceYears_ExplicitWins(t *testing.T) {
	text := "Engineer Engineer Engineer with 5 years of experience"
	got := ExtractExperienceYears(text)
	if got == nil || *got != 5 {
		t.Fatalf("got %v, want 5", got)
	}
}

func TestExtractExperienceYears_LabelBeforeNumber(t *testing.T) {
	got := ExtractExperienceYears("Total Experience: 7.5 years")
	if got == nil || *got != 7.5 {
		t.Fatalf("got %v, want 7.5", got)
	}
}

func TestExtractExperienceYears_OutOfRangeIgnored(t *testing.T) {
	got := ExtractExperienceYears("99 years of experience")
	if got != nil {
		t.Fatalf("expected nil for out-of-range value, got %v", *got)
	}
}

func TestExtractExperienceYears_RoleKeywordFallback(t *testing.T) {
	got := ExtractExperienceYears("Software Engineer, then Developer, then Manager")
	if got == nil || *got != 1.5 {
		t.Fatalf("got %v, want 1.5", got)
	}
}

func TestExtractExperienceYears_FallbackCapped(t *testing.T) {
	text := ""
	for i := 0; i < 30; i++ {
		text += "Engineer "
	}
	got := ExtractExperienceYears(text)
	if got == nil || *got != 10.0 {
		t.Fatalf("got %v, want cap 10.0", got)
	}
}

func TestExtractExperienceYears_NoSignal(t *testing.T) {
	if got := ExtractExperienceYears("gardening enthusiast"); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
}
