package chat

// QuickAction is a canned question the learner can send with one keypress.
type QuickAction struct {
	Label  string
	Prompt string
}

// QuickActions returns the built-in quick actions for a session.
func QuickActions() []QuickAction {
	return []QuickAction{
		{Label: "Summarize", Prompt: "Can you summarize the key points of this topic for me?"},
		{Label: "Study tips", Prompt: "What are some effective ways to study this topic?"},
		{Label: "Quiz me", Prompt: "Ask me a quick question to check my understanding."},
	}
}
