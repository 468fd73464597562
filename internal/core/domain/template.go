package domain

// JournalTemplate is a guided writing format users can start an entry from.
// The catalog is static and shipped with the backend.
type JournalTemplate struct {
	TemplateID  string   `json:"templateID"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Prompts     []string `json:"prompts,omitempty"`
	Placeholder string   `json:"placeholder"`
}

// Templates returns the built-in template catalog in display order.
func Templates() []JournalTemplate {
	return []JournalTemplate{
		{
			TemplateID:  "free-form",
			Name:        "Free Form",
			Description: "Write freely about anything on your mind.",
			Placeholder: "What's on your mind today?",
		},
		{
			TemplateID:  "gratitude",
			Name:        "Gratitude",
			Description: "Focus on what you're thankful for to boost positive emotions.",
			Prompts: []string{
				"What are three things you're grateful for today?",
				"Who is someone that made a positive impact on your life recently?",
				"What's something small that brought you joy today?",
			},
			Placeholder: "I'm grateful for...",
		},
		{
			TemplateID:  "reflection",
			Name:        "Daily Reflection",
			Description: "Reflect on your day, achievements, and areas for growth.",
			Prompts: []string{
				"What went well today?",
				"What could have gone better?",
				"What did you learn today?",
				"What's one thing you want to focus on tomorrow?",
			},
			Placeholder: "Reflecting on my day...",
		},
		{
			TemplateID:  "goals",
			Name:        "Goals & Intentions",
			Description: "Set clear intentions and track progress toward your goals.",
			Prompts: []string{
				"What are your top 3 goals right now?",
				"What small step can you take today toward one of your goals?",
				"What obstacles might you face, and how will you overcome them?",
			},
			Placeholder: "My goals and intentions are...",
		},
		{
			TemplateID:  "mood",
			Name:        "Mood Journal",
			Description: "Track your emotions and identify patterns in your mood.",
			Prompts: []string{
				"How are you feeling right now? Why do you think you feel this way?",
				"What triggered any strong emotions today?",
				"What helped you feel better when you were down?",
			},
			Placeholder: "Today I'm feeling...",
		},
	}
}

// TemplateByID looks up a catalog template. The second return is false
// when the id is not part of the catalog.
func TemplateByID(id string) (JournalTemplate, bool) {
	for _, t := range Templates() {
		if t.TemplateID == id {
			return t, true
		}
	}
	return JournalTemplate{}, false
}
