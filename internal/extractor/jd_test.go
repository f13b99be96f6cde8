package extractor

import "testing"

const jdFixture = `Job Title: Data Engineer.
Responsibilities: build pipelines; maintain ETL workflows.
Requirements: Python, SQL, AWS.
Preferred: Kafka, dbt.`

func TestExtractJobDescription_Sections(t *testing.T) {
	jd := ExtractJobDescription(jdFixture)

	if jd.Title != "Data Engineer" {
		t.Fatalf("title = %q", jd.Title)
	}
	if len(jd.RequiredSkills) != 3 || jd.RequiredSkills[0] != "Python" ||
		jd.RequiredSkills[1] != "SQL" || jd.RequiredSkills[2] != "AWS" {
		t.Fatalf("required = %v", jd.RequiredSkills)
	}
	if len(jd.NiceToHaveSkills) != 2 || jd.NiceToHaveSkills[0] != "Kafka" || jd.NiceToHaveSkills[1] != "dbt" {
		t.Fatalf("nice = %v", jd.NiceToHaveSkills)
	}
	found := false
	for _, r := range jd.Responsibilities {
		if r == "build pipelines" {
			found = true
		}
	}
	if !found {
		t.Fatalf("responsibilities = %v", jd.Responsibilities)
	}
}

func TestExtractJobDescription_KeywordFallback(t *testing.T) {
	jd := ExtractJobDescription("We use python and docker every day.")
	if len(jd.RequiredSkills) != 2 || jd.RequiredSkills[0] != "python" || jd.RequiredSkills[1] != "docker" {
		t.Fatalf("required = %v", jd.RequiredSkills)
	}
}

func TestExtractJobDescription_TitleGuess(t *testing.T) {
	jd := ExtractJobDescription("we need a Backend Engineer to own services.")
	if jd.Title != "Backend Engineer" {
		t.Fatalf("title = %q", jd.Title)
	}
}

func TestExtractJobDescription_Defaults(t *testing.T) {
	jd := ExtractJobDescription("short note about nothing in particular")
	if jd.Title != "General Role" {
		t.Fatalf("title = %q", jd.Title)
	}
	if len(jd.RequiredSkills) != 1 || jd.RequiredSkills[0] != "Not found" {
		t.Fatalf("required = %v", jd.RequiredSkills)
	}
	if len(jd.NiceToHaveSkills) != 1 || jd.NiceToHaveSkills[0] != "Not specified" {
		t.Fatalf("nice = %v", jd.NiceToHaveSkills)
	}
}
