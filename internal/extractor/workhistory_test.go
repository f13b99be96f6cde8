package extractor

import "testing"

func TestExtractWorkHistory_TitleAtCompany(t *testing.T) {
	text := "Data Analyst at Initech Ltd | Mar 2019 - Present\n• Built dashboards\n"
	entries := ExtractWorkHistory(text)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %+v", entries)
	}
	e := entries[0]
	if e.Designation != "Data Analyst" {
		t.Fatalf("designation = %q", e.Designation)
	}
	if e.Company != "Initech Ltd" {
		t.Fatalf("company = %q", e.Company)
	}
	if e.Duration != "Mar 2019 - Present" {
		t.Fatalf("duration = %q", e.Duration)
	}
	found := false
	for _, h := range e.Highlights {
		if h == "Built dashboards" {
			found = true
		}
	}
	if !found {
		t.Fatalf("highlights = %v", e.Highlights)
	}
}

func TestExtractWorkHistory_SwappedPairDedup(t *testing.T) {
	text := "Software Engineer | Acme Corp | Jan 2020 - Dec 2021\n" +
		"Acme Corp | Software Engineer | Jan 2018 - Dec 2019\n"
	entries := ExtractWorkHistory(text)
	if len(entries) != 1 {
		t.Fatalf("swapped pair not deduplicated: %+v", entries)
	}
	if entries[0].Designation != "Software Engineer" || entries[0].Company != "Acme Corp" {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestExtractWorkHistory_ShortFieldsRejected(t *testing.T) {
	// Designation under five characters is treated as a false positive.
	text := "Dev at A | Jan 2020 - Dec 2020\n"
	if entries := ExtractWorkHistory(text); len(entries) != 0 {
		t.Fatalf("expected no entries, got %+v", entries)
	}
}
