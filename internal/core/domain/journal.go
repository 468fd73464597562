package domain

// Journal represents a single journal entry written by a user.
// The AI fields stay empty until an analysis run completes for the entry.
type Journal struct {
	JournalID    string `json:"journalID"` // Primary Key (UUID)
	UserID       string `json:"userID"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	TemplateID   string `json:"templateID,omitempty"`
	AISummary    string `json:"aiSummary,omitempty"`
	AIMood       string `json:"aiMood,omitempty"`
	AIMoodScore  int    `json:"aiMoodScore,omitempty"`
	AISuggestion string `json:"aiSuggestion,omitempty"`
	AIProcessed  bool   `json:"aiProcessed"`
	AuditFields
}
