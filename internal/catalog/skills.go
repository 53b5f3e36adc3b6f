// Package catalog holds the static skill dictionary and job requirement
// tables consumed by extraction, scoring, and recommendation. All data is
// loaded once and read-only; concurrent analyses share it freely.
package catalog

// skillsByIndustry is the known-skill dictionary, grouped by industry.
var skillsByIndustry = map[string][]string{
	"technology": {
		"JavaScript", "TypeScript", "Python", "Java", "Go", "C++", "C#",
		"HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Express",
		"SQL", "MongoDB", "PostgreSQL", "Redis", "Git", "REST", "GraphQL",
		"System Design", "Microservices", "Agile", "Testing",
	},
	"data": {
		"Python", "R", "SQL", "Excel", "Tableau", "Power BI",
		"Data Visualization", "Statistical Analysis", "Machine Learning",
		"Deep Learning", "Big Data", "Pandas", "NumPy", "Spark",
		"Data Mining", "ETL",
	},
	"devops": {
		"Docker", "Kubernetes", "AWS", "Azure", "GCP", "Terraform",
		"Jenkins", "CI/CD", "Linux", "Bash", "Ansible", "Monitoring",
		"Cloud Platforms", "Networking",
	},
	"design": {
		"Figma", "Sketch", "Adobe XD", "Photoshop", "Illustrator",
		"Wireframing", "Prototyping", "User Research", "UI Design",
		"UX Design",
	},
	"management": {
		"Project Management", "Scrum", "Kanban", "Stakeholder Management",
		"Roadmapping", "Budgeting", "Leadership", "Communication",
	},
}

// fieldIndustry maps catalog job fields to their skill industry.
var fieldIndustry = map[string]string{
	"Software Developer": "technology",
	"Web Developer":      "technology",
	"Data Analyst":       "data",
	"DevOps Engineer":    "devops",
}

// SkillsForIndustry returns the dictionary entries for one industry.
// Unknown industries get the technology dictionary, the broadest one.
func SkillsForIndustry(industry string) []string {
	if skills, ok := skillsByIndustry[industry]; ok {
		return skills
	}
	return skillsByIndustry["technology"]
}

// SkillsForField returns the dictionary for the industry a job field
// belongs to.
func SkillsForField(field string) []string {
	return SkillsForIndustry(fieldIndustry[field])
}

// AllSkills returns every known skill across all industries, deduplicated.
// Used by the extraction fallback sweep.
func AllSkills() []string {
	seen := make(map[string]bool)
	var all []string
	for _, skills := range skillsByIndustry {
		for _, s := range skills {
			if !seen[s] {
				seen[s] = true
				all = append(all, s)
			}
		}
	}
	return all
}
