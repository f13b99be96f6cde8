package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"resume-match/internal/ai"

	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Assessor produces qualitative fit verdicts through a Gemini-backed
// content generator.
type Assessor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewAssessor(generator contentGenerator, logger *zap.Logger) *Assessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assessor{
		generator: generator,
		logger:    logger,
		maxLogLen: defaultMaxLogLength,
	}
}

// Assess sends job and resume text to the model and parses the structured
// verdict. The fit score is clamped to [1,10] whatever the model returns.
func (a *Assessor) Assess(ctx context.Context, jobText, resumeText, candidateName string) (*ai.FitAssessment, error) {
	if strings.TrimSpace(jobText) == "" {
		return nil, fmt.Errorf("job text is required")
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, fmt.Errorf("resume text is required")
	}

	prompt := buildPrompt(jobText, resumeText, candidateName)

	a.logger.Debug("assessor request",
		zap.String("candidate", candidateName),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
	)

	raw, err := a.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("assessor response",
		zap.String("candidate", candidateName),
		zap.String("response_preview", truncateForLog(raw, a.maxLogLen)),
	)

	return parseResponse(raw)
}

func buildPrompt(jobText, resumeText, candidateName string) string {
	prompt := strings.ReplaceAll(promptTemplate, "{{JOB_TEXT}}", jobText)
	prompt = strings.ReplaceAll(prompt, "{{CANDIDATE_NAME}}", candidateName)
	return strings.ReplaceAll(prompt, "{{RESUME_TEXT}}", resumeText)
}

func parseResponse(raw string) (*ai.FitAssessment, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse assessor response: %w", err)
	}

	score := coerceFloat(data["fit_score"])
	if score < 1 {
		score = 1
	}
	if score > 10 {
		score = 10
	}

	return &ai.FitAssessment{
		FitScore:       score,
		SummaryBullets: coerceStrings(data["summary_bullets"]),
		KeyStrengths:   coerceStrings(data["key_strengths"]),
		Concerns:       coerceStrings(data["concerns"]),
		Reasoning:      coerceString(data["reasoning"]),
	}, nil
}

// extractJSON strips markdown code fences that models wrap around JSON.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func coerceString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

func coerceStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if s := coerceString(v); s != "" {
			return []string{s}
		}
		return nil
	}
	var out []string
	for _, it := range items {
		if s := coerceString(it); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func truncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
