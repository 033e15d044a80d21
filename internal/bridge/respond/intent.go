package respond

import "strings"

// intentRule maps message keywords to a category. Rules are checked in order
// and the first match wins, so crisis detection always runs first.
type intentRule struct {
	category string
	keywords []string
}

var intentRules = []intentRule{
	{CategoryCrisis, []string{"crisis", "emergency", "suicide", "hurt myself", "panic", "overwhelmed", "meltdown"}},
	{CategoryEducation, []string{"study", "learn", "school", "homework", "exam", "test", "academic", "college"}},
	{CategoryTherapy, []string{"anxious", "stressed", "depressed", "sad", "worried", "emotional", "feelings", "mental health"}},
	{CategorySocial, []string{"social", "friends", "communication", "conversation", "relationship", "interact"}},
	{CategoryInterview, []string{"interview", "job", "career", "work", "employment", "professional"}},
	{CategoryDailyLiving, []string{"routine", "daily", "organize", "time management", "independent", "life skills"}},
	{CategoryScreening, []string{"adhd", "autism", "dyslexia", "neurodivergent", "diagnosis", "condition", "understand myself"}},
	{CategoryCaregiver, []string{"family", "parent", "caregiver", "support", "help my child"}},
}

// DetectCategory classifies a message into a support category by keyword
// matching. It is used by the live agent to choose a specialist persona when
// the caller did not name one; unmatched messages fall back to general.
func DetectCategory(message string) string {
	lower := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryGeneral
}
