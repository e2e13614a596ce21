package quiz

import (
	"maps"
	"slices"
)

// bank holds three questions per interest area for when the model is unavailable.
var bank = map[string][]Question{
	"Business & Management": {
		{
			Question:      "What is the most important factor when starting a business?",
			Options:       []string{"Having lots of money", "Understanding your customers", "Having a fancy office", "Being the smartest person"},
			CorrectAnswer: 1,
			Explanation:   "Understanding your customers helps you create products they actually want!",
		},
		{
			Question:      "What does 'profit' mean in business?",
			Options:       []string{"Money you borrow", "Money left after paying expenses", "Money you invest", "Money you save"},
			CorrectAnswer: 1,
			Explanation:   "Profit is what's left when you subtract all your costs from your income.",
		},
		{
			Question:      "Why is teamwork important in business?",
			Options:       []string{"It's not important", "Different people have different strengths", "It's required by law", "It makes work slower"},
			CorrectAnswer: 1,
			Explanation:   "Teams succeed because everyone brings unique skills and perspectives!",
		},
	},
	"Technology & Innovation": {
		{
			Question:      "What is innovation?",
			Options:       []string{"Using old methods", "Creating new solutions to problems", "Copying others", "Avoiding change"},
			CorrectAnswer: 1,
			Explanation:   "Innovation is about finding creative new ways to solve problems!",
		},
		{
			Question:      "How can technology help solve problems?",
			Options:       []string{"It can't help", "By making tasks faster and easier", "Only for entertainment", "It creates more problems"},
			CorrectAnswer: 1,
			Explanation:   "Technology is a powerful tool that can make our lives better and solve real challenges.",
		},
		{
			Question:      "What's the first step in creating a new app?",
			Options:       []string{"Writing code", "Understanding what problem it solves", "Designing the interface", "Finding investors"},
			CorrectAnswer: 1,
			Explanation:   "Before building anything, you need to understand what problem you're solving for users.",
		},
	},
	"Marketing & Sales": {
		{
			Question:      "What is the main goal of marketing?",
			Options:       []string{"To spend money", "To help customers find what they need", "To trick people", "To make noise"},
			CorrectAnswer: 1,
			Explanation:   "Good marketing connects customers with products that truly help them!",
		},
		{
			Question:      "What makes a good advertisement?",
			Options:       []string{"Being loud", "Being honest and helpful", "Being expensive", "Being confusing"},
			CorrectAnswer: 1,
			Explanation:   "The best ads are honest, clear, and show how a product can help people.",
		},
		{
			Question:      "How do you build trust with customers?",
			Options:       []string{"Make big promises", "Be consistent and reliable", "Offer the lowest prices", "Use fancy words"},
			CorrectAnswer: 1,
			Explanation:   "Trust comes from consistently delivering on your promises and being reliable!",
		},
	},
	"Finance & Economics": {
		{
			Question:      "What is the most important financial skill for entrepreneurs?",
			Options:       []string{"Complex math", "Understanding cash flow", "Stock market trading", "Cryptocurrency"},
			CorrectAnswer: 1,
			Explanation:   "Cash flow - knowing when money comes in and goes out - is crucial for business survival!",
		},
		{
			Question:      "Why is budgeting important for a business?",
			Options:       []string{"It's required by law", "It helps plan and control spending", "It impresses investors", "It's not really important"},
			CorrectAnswer: 1,
			Explanation:   "Budgeting helps you plan ahead and make sure you don't run out of money!",
		},
		{
			Question:      "What is a simple way to increase profit?",
			Options:       []string{"Increase prices without value", "Reduce unnecessary costs", "Ignore customers", "Stop marketing"},
			CorrectAnswer: 1,
			Explanation:   "Reducing unnecessary costs while maintaining value can improve profitability.",
		},
	},
	"Law & Ethics": {
		{
			Question:      "Why are ethics important in business?",
			Options:       []string{"They slow decisions", "They build trust", "They are optional", "They help hide mistakes"},
			CorrectAnswer: 1,
			Explanation:   "Ethics build trust with customers, partners, and the community.",
		},
		{
			Question:      "What is a simple example of ethical behavior?",
			Options:       []string{"Misleading customers", "Being transparent about pricing", "Breaking promises", "Hiding problems"},
			CorrectAnswer: 1,
			Explanation:   "Being transparent helps customers make informed decisions and builds credibility.",
		},
		{
			Question:      "Who should businesses consider when making ethical decisions?",
			Options:       []string{"Only owners", "Customers, employees, and community", "Only investors", "Only competitors"},
			CorrectAnswer: 1,
			Explanation:   "Ethical decisions consider the wider impact on stakeholders.",
		},
	},
	"Health & Well-Being": {
		{
			Question:      "Why is teamwork important in health-related projects?",
			Options:       []string{"It slows work", "Different skills help solve problems", "It's not needed", "Only one person should decide"},
			CorrectAnswer: 1,
			Explanation:   "Health projects benefit from diverse expertise and collaboration.",
		},
		{
			Question:      "What does 'well-being' include?",
			Options:       []string{"Only physical health", "Physical, mental, and social health", "Only wealth", "Only fame"},
			CorrectAnswer: 1,
			Explanation:   "Well-being covers multiple aspects of health, not just physical.",
		},
		{
			Question:      "How can communities support health initiatives?",
			Options:       []string{"Ignore them", "Participate and share information", "Avoid involvement", "Stop services"},
			CorrectAnswer: 1,
			Explanation:   "Community participation helps programs succeed and reach more people.",
		},
	},
	"Education & Training": {
		{
			Question:      "What makes a good learning activity?",
			Options:       []string{"Being boring", "Being interactive and relevant", "Being long and complex", "Being expensive"},
			CorrectAnswer: 1,
			Explanation:   "Interactive activities that relate to learners' lives help learning stick.",
		},
		{
			Question:      "Why is feedback important in learning?",
			Options:       []string{"It's not important", "It helps learners improve", "It makes learners sad", "It's only for exams"},
			CorrectAnswer: 1,
			Explanation:   "Feedback guides learners on what to improve and reinforces progress.",
		},
		{
			Question:      "How can teachers make lessons more engaging?",
			Options:       []string{"Use only lectures", "Include examples and activities", "Avoid student questions", "Use only textbooks"},
			CorrectAnswer: 1,
			Explanation:   "Examples and activities help students apply ideas and stay engaged.",
		},
	},
	"Creative Arts & Media": {
		{
			Question:      "What is storytelling useful for in media?",
			Options:       []string{"Confusing people", "Connecting with audiences", "Hiding facts", "Avoiding honesty"},
			CorrectAnswer: 1,
			Explanation:   "Stories help people relate to ideas and remember them.",
		},
		{
			Question:      "Which element helps make good design?",
			Options:       []string{"Ignoring users", "Thinking about the user's needs", "Using only bright colors", "Making it complex"},
			CorrectAnswer: 1,
			Explanation:   "User-centered design ensures the result is useful and usable.",
		},
		{
			Question:      "How can art influence society?",
			Options:       []string{"It can't", "By inspiring ideas and discussion", "Only for decoration", "By enforcing rules"},
			CorrectAnswer: 1,
			Explanation:   "Art can raise awareness and spark conversations about important issues.",
		},
	},
	"Agriculture & Sustainability": {
		{
			Question:      "Why is sustainable farming important?",
			Options:       []string{"It uses more resources", "It protects soil and future harvests", "It costs too much", "It reduces food"},
			CorrectAnswer: 1,
			Explanation:   "Sustainable practices help keep land productive for generations.",
		},
		{
			Question:      "What helps increase crop yields responsibly?",
			Options:       []string{"Overuse fertilizers", "Proper crop rotation and care", "Ignore pests", "Plant randomly"},
			CorrectAnswer: 1,
			Explanation:   "Good farming practices improve yields without harming the environment.",
		},
		{
			Question:      "How can communities support sustainable agriculture?",
			Options:       []string{"Buy locally", "Avoid farming", "Use harmful chemicals", "Ignore education"},
			CorrectAnswer: 0,
			Explanation:   "Buying local supports farmers and sustainable practices.",
		},
	},
	"Public Service & Policy": {
		{
			Question:      "What is public service about?",
			Options:       []string{"Helping communities", "Making money only", "Avoiding responsibility", "Only politics"},
			CorrectAnswer: 0,
			Explanation:   "Public service aims to improve the well-being of communities.",
		},
		{
			Question:      "How can citizens influence policy?",
			Options:       []string{"Stay silent", "Vote and engage in discussion", "Ignore elections", "Only complain online"},
			CorrectAnswer: 1,
			Explanation:   "Participation in civic processes helps shape better policies.",
		},
		{
			Question:      "Why is fairness important in policy?",
			Options:       []string{"It isn't", "It ensures everyone is treated justly", "It slows progress", "It only helps some people"},
			CorrectAnswer: 1,
			Explanation:   "Fair policies build trust and better outcomes for society.",
		},
	},
}

// Fallback returns the bank for interestArea, or the general business
// questions when the area is unknown.
func Fallback(interestArea string) []Question {
	if qs, ok := bank[interestArea]; ok {
		return qs
	}
	return bank[DefaultInterestArea]
}

// InterestAreas lists the areas with their own fallback questions.
func InterestAreas() []string {
	return slices.Sorted(maps.Keys(bank))
}
