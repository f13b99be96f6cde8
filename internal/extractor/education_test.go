package extractor

import "testing"

const eduFixture = `EDUCATION
B.Tech in Computer Science, Indian Institute of Technology, 2018
CGPA: 8.5/10
`

func TestExtractEducation_FullEntry(t *testing.T) {
	entries := ExtractEducation(eduFixture)
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %+v", entries)
	}
	e := entries[0]
	if e.Degree != "B.Tech" {
		t.Fatalf("degree = %q", e.Degree)
	}
	if e.Field != "Computer Science" {
		t.Fatalf("field = %q", e.Field)
	}
	if e.Institution != "Indian Institute of Technology" {
		t.Fatalf("institution = %q", e.Institution)
	}
	if e.Year != "2018" {
		t.Fatalf("year = %q", e.Year)
	}
	if e.Grade != "8.5/10" {
		t.Fatalf("grade = %q", e.Grade)
	}
}

func TestExtractEducation_DuplicateLinesCollapse(t *testing.T) {
	text := "EDUCATION\nMCA from Pune University, 2015\nMCA from Pune University, 2015\n"
	entries := ExtractEducation(text)
	if len(entries) != 1 {
		t.Fatalf("expected deduplicated entry, got %+v", entries)
	}
	if entries[0].Degree != "MCA" {
		t.Fatalf("degree = %q", entries[0].Degree)
	}
}

func TestExtractEducation_NoDegrees(t *testing.T) {
	if entries := ExtractEducation("worked as a chef for ten years"); len(entries) != 0 {
		t.Fatalf("expected none, got %+v", entries)
	}
}

func TestExtractEducation_SectionStopsAtExperience(t *testing.T) {
	text := "EDUCATION\nB.Sc in Physics, 2012\nEXPERIENCE\nPhD in procrastination\n"
	entries := ExtractEducation(text)
	for _, e := range entries {
		if e.Degree == "PhD" {
			t.Fatalf("matched past the section boundary: %+v", entries)
		}
	}
}
