package respond

// Known categories. CategoryGeneral is the reserved default every unknown tag
// degrades to; CategoryCrisis carries the safety override in Respond.
const (
	CategoryGeneral     = "general"
	CategoryEducation   = "education"
	CategoryTherapy     = "therapy"
	CategorySocial      = "social"
	CategoryInterview   = "interview"
	CategoryDailyLiving = "dailyliving"
	CategoryScreening   = "screening"
	CategoryCaregiver   = "caregiver"
	CategoryCrisis      = "crisis"
)

// nameToken is substituted with the caller's display name in every template.
const nameToken = "{name}"

// templateSet maps each category to its canned reply templates. Initialised
// once, never mutated; every list must stay non-empty.
var templateSet = map[string][]string{
	CategoryGeneral: {
		"Hi {name}! I'm here to help you with whatever you need. Could you tell me a bit more about what's on your mind today?",
		"Hello {name}! I'm BrightBridge, your neurodivergent support assistant. What would you like to talk about or get help with?",
		"Thanks for reaching out, {name}! I'm here to support you. What's something I can help you with today?",
		"Hi there, {name}! I'm glad you're here. What's something you'd like to explore or get support with?",
	},
	CategoryEducation: {
		"{name}, I'd be happy to help you with your learning needs! Let's start by understanding your specific challenges. Are you having trouble with focus, organization, note-taking, or test preparation?",
		"Great question about learning, {name}! Every neurodivergent learner has unique strengths. What subject or learning area would you like to focus on today?",
		"I can definitely help you develop effective study strategies, {name}. What's your current biggest challenge with learning or academics?",
	},
	CategoryTherapy: {
		"{name}, I hear that you're dealing with some difficult feelings. That takes courage to share. Can you tell me more about what you're experiencing right now?",
		"Thank you for trusting me with your feelings, {name}. It's completely normal to feel anxious or stressed. What situations tend to trigger these feelings for you?",
		"I'm here to support you through this, {name}. Let's work together on some coping strategies. What usually helps you feel a bit better when you're stressed?",
	},
	CategorySocial: {
		"{name}, social interactions can feel challenging sometimes. I'm here to help you build confidence in communication. What social situation would you like to work on?",
		"Great that you're focusing on social skills, {name}! Everyone learns social interaction differently. What specific area would you like to improve?",
		"I can help you navigate social situations, {name}. Are you looking for help with conversations, making friends, or understanding social cues?",
	},
	CategoryInterview: {
		"{name}, I'm excited to help you prepare for your interview! Job interviews can feel nerve-wracking, but with the right preparation, you can showcase your strengths. What type of interview are you preparing for?",
		"Great that you're working on interview skills, {name}! Every person has unique strengths to offer. What aspect of interviewing would you like to focus on - preparation, answering questions, or managing anxiety?",
		"I can definitely help you build confidence for interviews, {name}. What's your biggest concern about the upcoming interview process?",
	},
	CategoryDailyLiving: {
		"{name}, developing daily living skills is so important for independence. What area of daily life would you like to work on - routines, organization, or time management?",
		"I'm here to help you with practical life skills, {name}. What daily challenge would you like to tackle first?",
		"Building independence is a great goal, {name}! What specific daily living skill would you like to develop or improve?",
	},
	CategoryScreening: {
		"{name}, it's wonderful that you're seeking to understand yourself better. Self-awareness is a powerful tool. What specific aspects of neurodivergence are you curious about?",
		"I can provide educational information about various neurodivergent conditions, {name}. Remember, I can't diagnose, but I can help you understand different traits and when it might be helpful to consult a professional. What would you like to learn about?",
		"Thank you for your question, {name}. Understanding neurodivergence can be really empowering. What experiences or traits have you been wondering about?",
	},
	CategoryCaregiver: {
		"{name}, supporting a neurodivergent family member can be both rewarding and challenging. What specific situation would you like guidance on?",
		"I understand you're looking for family support, {name}. Every family's journey is unique. What's your biggest concern or question right now?",
		"Thank you for reaching out, {name}. Caregivers need support too. What aspect of caregiving would you like to discuss today?",
	},
	CategoryCrisis: {
		"{name}, I'm here to help you through this difficult moment. Your safety is the most important thing right now. Can you tell me how you're feeling and what's happening?",
		"Thank you for reaching out, {name}. That shows real strength. Let's focus on helping you feel safer right now. Are you in immediate danger?",
		"I'm glad you contacted me, {name}. Crisis moments can feel overwhelming, but you don't have to face this alone. What's the most pressing thing you need help with right now?",
	},
}

// Categories returns every known category tag. Useful for tests and the
// health endpoint; the returned slice is a copy.
func Categories() []string {
	out := make([]string, 0, len(templateSet))
	for c := range templateSet {
		out = append(out, c)
	}
	return out
}
