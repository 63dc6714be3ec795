package interview

import "math/rand"

// presetRounds are the fallback question banks used when dynamic generation
// is unavailable.
var presetRounds = map[string][]string{
	"HR": {
		"Tell me about yourself.",
		"Why do you want to work here?",
		"Where do you see yourself in 5 years?",
		"Describe a challenge you overcame.",
		"What are your strengths and weaknesses?",
	},
	"Technical": {
		"Explain OOP principles.",
		"How does a REST API work?",
		"What is a deadlock in DBMS?",
		"What is the difference between TCP and UDP?",
		"Explain how garbage collection works in Python.",
	},
	"System Design": {
		"Design a URL shortener like bit.ly.",
		"How would you design a scalable messaging system?",
		"Design an e-commerce checkout system.",
		"What are the trade-offs between SQL and NoSQL?",
		"Design a file storage system like Dropbox.",
	},
}

// PresetQuestion picks a random question from the round's bank, defaulting to
// the HR round for unknown names.
func PresetQuestion(round string) string {
	bank, ok := presetRounds[round]
	if !ok || len(bank) == 0 {
		bank = presetRounds["HR"]
	}
	return bank[rand.Intn(len(bank))]
}

// Rounds lists the available round names.
func Rounds() []string {
	return []string{"HR", "Technical", "System Design"}
}
