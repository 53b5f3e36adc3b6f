package catalog

import "github.com/jonathan/resume-analyzer/internal/types"

// coursesByLevel groups the generic course pool by candidate skill level.
// Selection picks from the pool matching the candidate's predominant
// proficiency, then borrows from the adjacent tier.
var coursesByLevel = map[string][]types.Recommendation{
	"Beginner": {
		{
			Title:       "Programming Fundamentals",
			Description: "Learn the basics of programming including syntax, data structures, and algorithms.",
			Provider:    "Coursera",
			Level:       "Beginner",
			Link:        "https://coursera.org/programming-fundamentals",
		},
		{
			Title:       "Web Development Basics",
			Description: "Introduction to HTML, CSS, and JavaScript for beginners.",
			Provider:    "Udemy",
			Level:       "Beginner",
			Link:        "https://udemy.com/web-dev-basics",
		},
	},
	"Intermediate": {
		{
			Title:       "Advanced Programming Concepts",
			Description: "Master advanced programming concepts including design patterns and software architecture.",
			Provider:    "Coursera",
			Level:       "Intermediate",
			Link:        "https://coursera.org/advanced-programming",
		},
		{
			Title:       "Cloud Computing Essentials",
			Description: "Learn cloud architecture and deployment with hands-on projects.",
			Provider:    "Udemy",
			Level:       "Intermediate",
			Link:        "https://udemy.com/cloud-computing",
		},
	},
	"Advanced": {
		{
			Title:       "System Architecture & Design",
			Description: "Advanced system design patterns and architectural principles.",
			Provider:    "PluralSight",
			Level:       "Advanced",
			Link:        "https://pluralsight.com/system-architecture",
		},
		{
			Title:       "Enterprise Development",
			Description: "Build scalable enterprise applications with modern technologies.",
			Provider:    "edX",
			Level:       "Advanced",
			Link:        "https://edx.org/enterprise-dev",
		},
	},
}

// gapCourses maps missing-skill keyword families to targeted courses.
// Entries here are injected with priority when the analysis surfaces a
// matching missing skill.
var gapCourses = map[string]types.Recommendation{
	"python": {
		Title:       "Python Programming Masterclass",
		Description: "Complete Python programming course covering basics to advanced topics.",
		Provider:    "Udacity",
		Link:        "https://udacity.com/python-masterclass",
	},
	"java": {
		Title:       "Java Enterprise Development",
		Description: "Learn enterprise Java development, including Spring Framework, Hibernate, and microservices architecture.",
		Provider:    "PluralSight",
		Link:        "https://pluralsight.com/java-enterprise",
	},
	"data": {
		Title:       "Data Science Fundamentals",
		Description: "Comprehensive introduction to data science, covering statistics, machine learning, and data visualization.",
		Provider:    "DataCamp",
		Link:        "https://datacamp.com/data-science",
	},
}

// CoursesForLevel returns the generic course pool for a skill level.
func CoursesForLevel(level string) []types.Recommendation {
	return coursesByLevel[level]
}

// GapCourseFor returns the targeted course for a missing-skill keyword
// family, if one exists.
func GapCourseFor(family string) (types.Recommendation, bool) {
	c, ok := gapCourses[family]
	return c, ok
}

// GapFamilies returns the keyword families with targeted courses, in a
// fixed order so injection is deterministic.
func GapFamilies() []string {
	return []string{"python", "java", "data"}
}
