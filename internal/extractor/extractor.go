package extractor

import (
	"strings"
	"time"

	"resume-match/internal/domain/candidate"

	"go.uber.org/zap"
)

// Resume is the structured record produced from one parsed document.
type Resume struct {
	Name             string
	Emails           []string
	Phones           []string
	Skills           []string
	SkillsByCategory map[string][]string
	ExperienceYears  *float64
	Education        []candidate.EducationEntry
	WorkHistory      []candidate.WorkHistoryEntry
	RawText          string
	FileName         string
	ParsedAt         time.Time
}

// Extractor turns raw document text into structured candidate fields.
// Construct once; the compiled skill taxonomy is reused across requests
// and is safe for concurrent use.
type Extractor struct {
	taxonomy *SkillTaxonomy
	region   string
	logger   *zap.Logger
}

func New(phoneRegion string, logger *zap.Logger) *Extractor {
	if phoneRegion == "" {
		phoneRegion = "IN"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{
		taxonomy: NewSkillTaxonomy(),
		region:   phoneRegion,
		logger:   logger,
	}
}

// ParseBytes extracts text from the payload and parses it. fileName is
// recorded on the result only.
func (e *Extractor) ParseBytes(data []byte, ext, fileName string) (*Resume, error) {
	text, err := ExtractText(data, ext)
	if err != nil {
		return nil, err
	}
	return e.Parse(text, fileName)
}

// Parse runs every field extraction over the text. Field extractions
// degrade independently to empty values; the only failure is a text with
// no content at all.
func (e *Extractor) Parse(text, fileName string) (*Resume, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoText
	}

	byCategory, all := e.taxonomy.Extract(text)

	r := &Resume{
		Name:             ExtractName(text),
		Emails:           ExtractEmails(text),
		Phones:           ExtractPhones(text, e.region),
		Skills:           all,
		SkillsByCategory: byCategory,
		ExperienceYears:  ExtractExperienceYears(text),
		Education:        ExtractEducation(text),
		WorkHistory:      ExtractWorkHistory(text),
		RawText:          text,
		FileName:         fileName,
		ParsedAt:         time.Now().UTC(),
	}

	if r.Name == "" {
		e.logger.Debug("name extraction found no qualifying line", zap.String("file", fileName))
	}

	e.logger.Info("resume parsed",
		zap.String("file", fileName),
		zap.Int("skills", len(r.Skills)),
		zap.Int("education_entries", len(r.Education)),
		zap.Int("work_entries", len(r.WorkHistory)),
	)

	return r, nil
}
