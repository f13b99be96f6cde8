package extractor

import (
	"regexp"
	"strings"

	"resume-match/internal/domain/candidate"
)

const (
	monthYear = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{4}`
	dateEnd   = monthYear + `|Present|Current`
	titleCls  = `[\w\s,./&-]`
	compCls   = `[\w\s&,.()-]`
)

// Four layout templates for one work-history entry. All are applied; every
// non-overlapping valid match is kept.
var workPatterns = []*regexp.Regexp{
	// Title at Company | Start - End
	regexp.MustCompile(`(?im)(?P<title>` + titleCls + `+?)\s+(?:at|@)\s+(?P<company>[A-Z]` + compCls + `+?)\s*[|\n]\s*(?P<start>` + monthYear + `)\s*[-–—]\s*(?P<end>` + dateEnd + `)`),
	// Company \n Title \n Start - End
	regexp.MustCompile(`(?im)(?P<company>[A-Z]` + compCls + `{2,50}?)\n\s*(?P<title>` + titleCls + `+?)\n\s*(?P<start>` + monthYear + `)\s*[-–—]\s*(?P<end>` + dateEnd + `)`),
	// Title | Company | Start - End
	regexp.MustCompile(`(?im)(?P<title>` + titleCls + `+?)\s*[|\n]\s*(?P<company>[A-Z]` + compCls + `+?)\s*[|\n]\s*(?P<start>` + monthYear + `)\s*[-–—]\s*(?P<end>` + dateEnd + `)`),
	// Role-keyword title without dates
	regexp.MustCompile(`(?im)(?P<title>(?:Senior|Junior|Lead|Principal|Staff|Associate)?\s*(?:Software|Data|Machine Learning|Full Stack|Backend|Frontend|DevOps|Cloud)?\s*(?:Engineer|Developer|Analyst|Architect|Manager|Consultant|Designer|Lead))\s+(?:at|@|,|-)\s+(?P<company>[A-Z]` + compCls + `{2,40})`),
}

var (
	locationRe  = regexp.MustCompile(`\n\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s*(?:,\s*)?([A-Z][a-z]+)?`)
	highlightRe = regexp.MustCompile(`(?m)[•●▪▸◦-]\s*(.+)$`)
)

// ExtractWorkHistory collects work entries from the experience section
// using all four layout templates. Entries are deduplicated by normalized
// (designation, company); a swapped (company, designation) pair counts as
// the same entry, since the column order is a layout accident.
func ExtractWorkHistory(text string) []candidate.WorkHistoryEntry {
	section := experienceSection(text)

	var entries []candidate.WorkHistoryEntry
	seen := make(map[[2]string]struct{})

	for _, re := range workPatterns {
		groups := re.SubexpNames()
		for _, idx := range re.FindAllStringSubmatchIndex(section, -1) {
			var title, company, start, end string
			for gi, gname := range groups {
				if idx[2*gi] < 0 {
					continue
				}
				val := section[idx[2*gi]:idx[2*gi+1]]
				switch gname {
				case "title":
					title = val
				case "company":
					company = val
				case "start":
					start = val
				case "end":
					end = val
				}
			}

			designation := cleanEntryField(title)
			company = cleanEntryField(company)
			if designation == "" || company == "" {
				continue
			}
			if len(company) < 2 || len(company) > 60 || len(designation) < 5 {
				continue
			}

			key := [2]string{strings.ToLower(designation), strings.ToLower(company)}
			swapped := [2]string{key[1], key[0]}
			if _, dup := seen[key]; dup {
				continue
			}
			if _, dup := seen[swapped]; dup {
				continue
			}
			seen[key] = struct{}{}

			entry := candidate.WorkHistoryEntry{
				Designation: designation,
				Company:     company,
			}

			start = strings.TrimSpace(start)
			end = strings.TrimSpace(end)
			if start != "" && end != "" {
				entry.Duration = start + " - " + end
			} else if start != "" {
				entry.Duration = start + " - Present"
			}

			context := windowAround(section, idx[0], idx[1], 0, 200)
			entry.Location = findLocation(context)
			entry.Highlights = findHighlights(context)

			entries = append(entries, entry)
		}
	}

	return entries
}

func cleanEntryField(v string) string {
	v = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(v), ",;.\n|"))
	return collapseWhitespaceRe.ReplaceAllString(v, " ")
}

func findLocation(context string) string {
	m := locationRe.FindString(context)
	loc := strings.TrimSpace(m)
	if len(loc) > 3 && len(loc) < 40 {
		return loc
	}
	return ""
}

func findHighlights(context string) []string {
	var highlights []string
	for _, m := range highlightRe.FindAllStringSubmatch(context, -1) {
		h := strings.TrimSpace(m[1])
		if h == "" {
			continue
		}
		highlights = append(highlights, h)
		if len(highlights) == 5 {
			break
		}
	}
	return highlights
}
