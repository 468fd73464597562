package domain

// Insight holds the three AI observations produced for one journal entry.
type Insight struct {
	Summary    string `json:"summary"`
	Mood       string `json:"mood"`
	MoodScore  int    `json:"moodScore"`
	Suggestion string `json:"suggestion"`
}
