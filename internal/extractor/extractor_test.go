package extractor

import (
	"errors"
	"testing"
)

const resumeFixture = `Rahul Sharma
rahul.sharma@example.com
+91-9876543210

SKILLS
Python, Golang, Docker

EXPERIENCE
Software Engineer at Acme Corp | Jan 2020 - Dec 2022

5 years of experience
`

func TestParse_FullResume(t *testing.T) {
	r, err := New("IN", nil).Parse(resumeFixture, "resume.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Name != "Rahul Sharma" {
		t.Fatalf("name = %q", r.Name)
	}
	if len(r.Emails) != 1 || r.Emails[0] != "rahul.sharma@example.com" {
		t.Fatalf("emails = %v", r.Emails)
	}
	if len(r.Phones) != 1 {
		t.Fatalf("phones = %v", r.Phones)
	}
	if !containsStr(r.Skills, "go") || !containsStr(r.Skills, "python") || !containsStr(r.Skills, "docker") {
		t.Fatalf("skills = %v", r.Skills)
	}
	if r.ExperienceYears == nil || *r.ExperienceYears != 5 {
		t.Fatalf("experience = %v", r.ExperienceYears)
	}
	if r.FileName != "resume.txt" {
		t.Fatalf("file name = %q", r.FileName)
	}
}

func TestParse_EmptyText(t *testing.T) {
	_, err := New("IN", nil).Parse("   \n\t ", "blank.txt")
	if !errors.Is(err, ErrNoText) {
		t.Fatalf("expected ErrNoText, got %v", err)
	}
}

func TestParse_FieldsDegradeSilently(t *testing.T) {
	r, err := New("IN", nil).Parse("unstructured note with no signal", "x.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Name != "" || len(r.Emails) != 0 || len(r.Skills) != 0 || r.ExperienceYears != nil {
		t.Fatalf("expected empty fields, got %+v", r)
	}
}

func TestParseBytes_UnsupportedFormat(t *testing.T) {
	_, err := New("IN", nil).ParseBytes([]byte("x"), "exe", "x.exe")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}
