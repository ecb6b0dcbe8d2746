package questions

// DefaultBank is the built-in question bank.
var DefaultBank = Bank{
	{
		Name: "Behavioral",
		Questions: []string{
			"Tell me about a time you went above and beyond for a customer or student.",
			"Describe a situation where you had to handle a difficult person. What did you do?",
			"Give me an example of when you had to adapt quickly to a change at work.",
			"Tell me about a time you made a mistake. How did you handle it?",
			"Describe a situation where you had to work with someone you didn't get along with.",
		},
	},
	{
		Name: "Culture Fit",
		Questions: []string{
			"What does integrity mean to you in the workplace?",
			"How do you handle it when you disagree with a manager's decision?",
			"What kind of team environment brings out your best work?",
			"Describe your ideal manager. What qualities do they have?",
			"What motivates you beyond a paycheck?",
		},
	},
	{
		Name: "Scenario",
		Questions: []string{
			"A parent is upset because their child didn't earn a belt promotion. How do you handle it?",
			"You notice a coworker consistently showing up late. What do you do?",
			"A student gets injured during class. Walk me through your response.",
			"You're working the desk alone and three things happen at once: phone rings, walk-in arrives, student has a question. How do you prioritize?",
			"A long-time student says they want to cancel their membership. What's your approach?",
		},
	},
	{
		Name: "Technical",
		Questions: []string{
			"What experience do you have with CRM or scheduling software?",
			"Describe your approach to following standard operating procedures.",
			"How do you stay organized when managing multiple tasks or responsibilities?",
			"What's your experience with cash handling and point-of-sale systems?",
			"How comfortable are you with social media posting and community management?",
		},
	},
}
