package job

type Job struct {
	ID               int64
	Title            string
	Description      string
	RequiredSkills   []string
	NiceToHaveSkills []string
	Embedding        []float64 // nil when embedding generation failed
}
