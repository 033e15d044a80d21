package respond

// Informational blocks appended to replies when their triggers match.
const (
	crisisResourcesBlock = "If you're in immediate danger, please call 911 or go to your nearest emergency room. For crisis support, call 988 (Suicide & Crisis Lifeline) or text HOME to 741741. These lines are available 24/7 and are confidential."

	anxietyTipsBlock = "A few things that can help when anxiety spikes: slow your breathing (in for 4, hold for 4, out for 6), name five things you can see around you, and remind yourself that the feeling will pass. You don't have to push through it alone."

	screeningNoteBlock = "Important: I provide educational information only and cannot diagnose conditions. For professional evaluation, please consult a qualified psychologist or psychiatrist."
)

// keywordRule appends its block when any trigger appears in the message.
// Triggers are matched as case-insensitive substrings.
type keywordRule struct {
	triggers []string
	block    string
}

// keywordRules are evaluated in declaration order; every matching rule
// contributes its block. The set is small and curated, so duplicates across
// rules are not a concern.
var keywordRules = []keywordRule{
	{
		triggers: []string{"suicide", "hurt myself", "crisis", "emergency", "hopeless", "meltdown"},
		block:    crisisResourcesBlock,
	},
	{
		triggers: []string{"anxious", "anxiety", "panic", "overwhelmed", "stressed"},
		block:    anxietyTipsBlock,
	},
	{
		triggers: []string{"adhd", "autism", "dyslexia", "diagnos", "neurodivergent"},
		block:    screeningNoteBlock,
	},
}
