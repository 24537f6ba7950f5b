package models

// Seed is the static local snapshot: the fallback dataset for demo mode and
// the input of the seeding utility. It is read-only; no vote concept exists
// here, so every write path is disabled when serving from it.
type Seed struct {
	Categories []Category     `json:"categories"`
	Questions  []SeedQuestion `json:"questions"`
}

// SeedQuestion is a question as stored in the snapshot file, optionally
// carrying at most one embedded sample solution.
type SeedQuestion struct {
	ID             string        `json:"id"`
	Category       string        `json:"category"`
	TitleEn        string        `json:"titleEn"`
	TitleZh        string        `json:"titleZh,omitempty"`
	DetailEn       string        `json:"detailEn,omitempty"`
	DetailZh       string        `json:"detailZh,omitempty"`
	UpvotesCount   int           `json:"upvotesCount"`
	SampleSolution *SeedSolution `json:"sampleSolution,omitempty"`
}

// SeedSolution is the embedded sample solution of a snapshot question.
type SeedSolution struct {
	ContentEn    string `json:"contentEn"`
	ContentZh    string `json:"contentZh,omitempty"`
	UpvotesCount int    `json:"upvotesCount"`
}
