package matching

import "strings"

// Narrative holds the qualitative sections rendered into a justification.
// Note carries pipeline-level remarks such as the LLM-unavailable marker.
type Narrative struct {
	Summary      []string
	KeyStrengths []string
	Concerns     []string
	Reasoning    string
	Note         string
}

// BuildJustification renders the narrative as a multi-section text block.
// Sections whose source list or string is empty are omitted entirely.
func BuildJustification(n Narrative) string {
	var sections []string

	if block := bulletSection("Summary", n.Summary); block != "" {
		sections = append(sections, block)
	}
	if block := bulletSection("Key Strengths", n.KeyStrengths); block != "" {
		sections = append(sections, block)
	}
	if block := bulletSection("Concerns", n.Concerns); block != "" {
		sections = append(sections, block)
	}
	if reasoning := strings.TrimSpace(n.Reasoning); reasoning != "" {
		sections = append(sections, "Reasoning:\n"+reasoning)
	}
	if note := strings.TrimSpace(n.Note); note != "" {
		sections = append(sections, note)
	}

	return strings.Join(sections, "\n\n")
}

func bulletSection(title string, items []string) string {
	var lines []string
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		lines = append(lines, "• "+it)
	}
	if len(lines) == 0 {
		return ""
	}
	return title + ":\n" + strings.Join(lines, "\n")
}
