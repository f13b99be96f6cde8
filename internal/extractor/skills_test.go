package extractor

import "testing"

func containsStr(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestSkillTaxonomy_SynonymNormalization(t *testing.T) {
	tax := NewSkillTaxonomy()
	_, all := tax.Extract("Experienced with Golang, K8s and Postgres")
	for _, want := range []string{"go", "kubernetes", "postgresql"} {
		if !containsStr(all, want) {
			t.Fatalf("missing %q in %v", want, all)
		}
	}
}

func TestSkillTaxonomy_Categories(t *testing.T) {
	tax := NewSkillTaxonomy()
	byCategory, all := tax.Extract("Python and React on AWS with MySQL")
	if !containsStr(byCategory["programming_languages"], "python") {
		t.Fatalf("python not categorized: %v", byCategory)
	}
	if !containsStr(byCategory["frameworks"], "react") {
		t.Fatalf("react not categorized: %v", byCategory)
	}
	if !containsStr(byCategory["cloud_devops"], "aws") {
		t.Fatalf("aws not categorized: %v", byCategory)
	}
	if !containsStr(byCategory["databases"], "mysql") {
		t.Fatalf("mysql not categorized: %v", byCategory)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 flat skills, got %v", all)
	}
}

func TestSkillTaxonomy_WordBoundary(t *testing.T) {
	tax := NewSkillTaxonomy()
	if _, all := tax.Extract("Scala and Javascripting"); containsStr(all, "javascript") {
		t.Fatalf("substring matched as skill: %v", all)
	}
}

func TestSkillTaxonomy_NoMatches(t *testing.T) {
	tax := NewSkillTaxonomy()
	byCategory, all := tax.Extract("fluent in French and Spanish")
	if len(all) != 0 || len(byCategory) != 0 {
		t.Fatalf("expected nothing, got %v / %v", byCategory, all)
	}
}
