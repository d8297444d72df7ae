package synthesis

import (
	"strings"

	"github.com/futurehub/horizon/internal/horizon"
)

// interestRule maps a role-name keyword to a coarse interest area and its
// dashboard gradient. Rules are ordered; the first keyword hit wins.
type interestRule struct {
	keywords []string
	title    string
	color    string
}

var interestRules = []interestRule{
	{[]string{"ml", "machine learning"}, "AI & Machine Learning", "from-emerald-500 to-teal-500"},
	{[]string{"data"}, "Data Science", "from-purple-500 to-pink-500"},
	{[]string{"backend"}, "Backend Development", "from-blue-500 to-cyan-500"},
	{[]string{"frontend"}, "Frontend Development", "from-orange-500 to-amber-500"},
	{[]string{"full"}, "Full Stack Development", "from-indigo-500 to-violet-500"},
	{[]string{"devops"}, "Cloud & DevOps", "from-red-500 to-rose-500"},
	{[]string{"blockchain", "smart contract", "dapp", "web3", "crypto"}, "Blockchain & Web3", "from-indigo-500 to-violet-500"},
}

const (
	defaultInterestTitle = "Software Development"
	defaultInterestColor = "from-indigo-500 to-violet-500"
	interestIcon         = "star"
)

func interestForRole(role string) (title, color string) {
	lower := strings.ToLower(role)
	for _, rule := range interestRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.title, rule.color
			}
		}
	}
	return defaultInterestTitle, defaultInterestColor
}

// actionRule maps a focus-skill keyword to a concrete curated resource.
type actionRule struct {
	keyword  string
	title    string
	subtitle string
	duration string
}

var actionRules = []actionRule{
	{"linear algebra", "Complete Linear Algebra Basics", "Khan Academy - Vectors & Matrices", "2 hours"},
	{"statistics", "Learn Statistics Fundamentals", "Khan Academy - Statistics", "2 hours"},
	{"python", "Python Practice", "LeetCode Easy Problems", "1 hour"},
	{"data structures", "Data Structures Deep Dive", "NeetCode - Arrays & Hashing", "2 hours"},
	{"algorithms", "Algorithm Practice", "LeetCode - Top Interview Questions", "2 hours"},
	{"machine learning", "ML Fundamentals", "Andrew Ng's ML Course - Week 1", "3 hours"},
	{"databases", "SQL Practice", "SQLZoo - Basic Queries", "1 hour"},
	{"git", "Git Essentials", "Learn Git Branching", "1 hour"},
}

func actionForFocus(focus horizon.ImmediateFocus) horizon.NextAction {
	skill := strings.ToLower(focus.Skill)
	for _, rule := range actionRules {
		if strings.Contains(skill, rule.keyword) {
			return horizon.NextAction{
				Title:    rule.title,
				Subtitle: rule.subtitle,
				Duration: rule.duration,
				Type:     "learning",
			}
		}
	}
	return horizon.NextAction{
		Title:    "Learn " + focus.Skill,
		Subtitle: "Find a tutorial or course",
		Duration: "1-2 hours",
		Type:     "learning",
	}
}
