package models

// Journal represents a journal entry row as stored in the database.
// TemplateID is empty for free-form entries; the AI columns stay empty
// until an analysis run completes.
type Journal struct {
	JournalID    string `db:"journal_id"`
	UserID       string `db:"user_id"`
	Title        string `db:"title"`
	Content      string `db:"content"`
	TemplateID   string `db:"template_id"`
	AISummary    string `db:"ai_summary"`
	AIMood       string `db:"ai_mood"`
	AIMoodScore  int    `db:"ai_mood_score"`
	AISuggestion string `db:"ai_suggestion"`
	AIProcessed  bool   `db:"ai_processed"`
	AuditFields
}
