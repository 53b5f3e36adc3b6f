package catalog

import "github.com/jonathan/resume-analyzer/internal/types"

// jobsByField is the requirement catalog, keyed by job field. Titles are
// case-sensitive and must match lookup keys exactly. Order within a field
// matters: ranking uses a stable sort, so catalog order breaks ties.
var jobsByField = map[string][]types.JobRequirement{
	"Software Developer": {
		{
			Title:       "Junior Software Developer",
			Description: "Entry level software development position focusing on web technologies",
			RequiredSkills: []types.WeightedSkill{
				{Name: "JavaScript", Importance: 8},
				{Name: "HTML", Importance: 7},
				{Name: "CSS", Importance: 7},
				{Name: "Git", Importance: 6},
			},
			PreferredSkills: []types.WeightedSkill{
				{Name: "React", Importance: 6},
				{Name: "Node.js", Importance: 6},
				{Name: "TypeScript", Importance: 5},
			},
			EducationFields: []string{"Computer Science", "Software Engineering", "Information Technology"},
			Salary:          types.SalaryRange{Min: 50000, Max: 80000},
			Certifications: []types.CertRef{
				{Title: "AWS Certified Developer", Provider: "Amazon Web Services", Link: "https://aws.amazon.com/certification/certified-developer-associate/"},
			},
		},
		{
			Title:       "Full Stack Developer",
			Description: "Full stack development role working with modern web technologies",
			RequiredSkills: []types.WeightedSkill{
				{Name: "JavaScript", Importance: 9},
				{Name: "React", Importance: 8},
				{Name: "Node.js", Importance: 8},
				{Name: "SQL", Importance: 7},
			},
			PreferredSkills: []types.WeightedSkill{
				{Name: "TypeScript", Importance: 7},
				{Name: "MongoDB", Importance: 6},
				{Name: "AWS", Importance: 6},
			},
			EducationFields: []string{"Computer Science", "Software Engineering"},
			Salary:          types.SalaryRange{Min: 70000, Max: 120000},
			Certifications: []types.CertRef{
				{Title: "AWS Certified Developer", Provider: "Amazon Web Services", Link: "https://aws.amazon.com/certification/certified-developer-associate/"},
				{Title: "Oracle Certified Professional: Java SE Developer", Provider: "Oracle", Link: "https://education.oracle.com/oracle-certified-professional-java-se-developer/trackp_333"},
			},
		},
		{
			Title:       "Senior Software Developer",
			Description: "Senior level position with architecture and team leadership responsibilities",
			RequiredSkills: []types.WeightedSkill{
				{Name: "JavaScript", Importance: 9},
				{Name: "React", Importance: 8},
				{Name: "Node.js", Importance: 8},
				{Name: "System Design", Importance: 8},
			},
			PreferredSkills: []types.WeightedSkill{
				{Name: "TypeScript", Importance: 7},
				{Name: "AWS", Importance: 7},
				{Name: "Docker", Importance: 7},
			},
			EducationFields: []string{"Computer Science", "Software Engineering"},
			Salary:          types.SalaryRange{Min: 100000, Max: 160000},
		},
	},
	"Data Analyst": {
		{
			Title:       "Junior Data Analyst",
			Description: "Entry level data analysis position focusing on SQL and visualization",
			RequiredSkills: []types.WeightedSkill{
				{Name: "SQL", Importance: 8},
				{Name: "Excel", Importance: 7},
				{Name: "Python", Importance: 6},
				{Name: "Data Visualization", Importance: 6},
			},
			PreferredSkills: []types.WeightedSkill{
				{Name: "Tableau", Importance: 6},
				{Name: "Power BI", Importance: 6},
				{Name: "R", Importance: 5},
			},
			EducationFields: []string{"Statistics", "Mathematics", "Computer Science", "Economics"},
			Salary:          types.SalaryRange{Min: 45000, Max: 75000},
		},
		{
			Title:       "Data Analyst",
			Description: "Mid-level data analyst position with focus on advanced analytics",
			RequiredSkills: []types.WeightedSkill{
				{Name: "SQL", Importance: 9},
				{Name: "Python", Importance: 8},
				{Name: "Data Visualization", Importance: 8},
				{Name: "Statistical Analysis", Importance: 7},
			},
			PreferredSkills: []types.WeightedSkill{
				{Name: "Tableau", Importance: 7},
				{Name: "Machine Learning", Importance: 6},
				{Name: "Big Data", Importance: 6},
			},
			EducationFields: []string{"Statistics", "Mathematics", "Computer Science"},
			Salary:          types.SalaryRange{Min: 65000, Max: 100000},
		},
		{
			Title:       "Senior Data Analyst",
			Description: "Senior data analyst position with machine learning focus",
			RequiredSkills: []types.WeightedSkill{
				{Name: "SQL", Importance: 9},
				{Name: "Python", Importance: 8},
				{Name: "Statistical Analysis", Importance: 8},
				{Name: "Machine Learning", Importance: 7},
			},
			PreferredSkills: []types.WeightedSkill{
				{Name: "Big Data", Importance: 7},
				{Name: "Cloud Platforms", Importance: 7},
				{Name: "Deep Learning", Importance: 6},
			},
			EducationFields: []string{"Statistics", "Mathematics", "Data Science"},
			Salary:          types.SalaryRange{Min: 85000, Max: 140000},
		},
	},
	"Web Developer": {
		{
			Title:       "Frontend Developer",
			Description: "Frontend position building responsive user interfaces",
			RequiredSkills: []types.WeightedSkill{
				{Name: "JavaScript", Importance: 9},
				{Name: "HTML", Importance: 8},
				{Name: "CSS", Importance: 8},
				{Name: "React", Importance: 7},
			},
			PreferredSkills: []types.WeightedSkill{
				{Name: "TypeScript", Importance: 6},
				{Name: "Vue", Importance: 5},
			},
			EducationFields: []string{"Computer Science", "Web Design"},
			Salary:          types.SalaryRange{Min: 55000, Max: 95000},
			Certifications: []types.CertRef{
				{Title: "Meta Front-End Developer Certificate", Provider: "Meta", Link: "https://www.coursera.org/professional-certificates/meta-front-end-developer"},
			},
		},
		{
			Title:       "Backend Developer",
			Description: "Backend position building APIs and data services",
			RequiredSkills: []types.WeightedSkill{
				{Name: "Node.js", Importance: 8},
				{Name: "SQL", Importance: 8},
				{Name: "REST", Importance: 7},
				{Name: "Git", Importance: 6},
			},
			PreferredSkills: []types.WeightedSkill{
				{Name: "PostgreSQL", Importance: 6},
				{Name: "Redis", Importance: 5},
				{Name: "GraphQL", Importance: 5},
			},
			EducationFields: []string{"Computer Science", "Software Engineering"},
			Salary:          types.SalaryRange{Min: 60000, Max: 110000},
		},
	},
	"DevOps Engineer": {
		{
			Title:       "DevOps Engineer",
			Description: "Infrastructure automation and deployment pipeline role",
			RequiredSkills: []types.WeightedSkill{
				{Name: "Docker", Importance: 8},
				{Name: "Kubernetes", Importance: 8},
				{Name: "CI/CD", Importance: 7},
				{Name: "Linux", Importance: 7},
			},
			PreferredSkills: []types.WeightedSkill{
				{Name: "Terraform", Importance: 7},
				{Name: "AWS", Importance: 6},
				{Name: "Ansible", Importance: 5},
			},
			EducationFields: []string{"Computer Science", "Information Technology"},
			Salary:          types.SalaryRange{Min: 75000, Max: 130000},
			Certifications: []types.CertRef{
				{Title: "AWS Certified DevOps Engineer", Provider: "Amazon Web Services", Link: "https://aws.amazon.com/certification/certified-devops-engineer-professional/"},
				{Title: "Kubernetes Administrator (CKA)", Provider: "Cloud Native Computing Foundation", Link: "https://www.cncf.io/certification/cka/"},
			},
		},
	},
}

// JobsForField returns the catalog entries for a field, in catalog order.
// Returns nil for fields with no entries; callers substitute the entry
// level placeholder in that case.
func JobsForField(field string) []types.JobRequirement {
	return jobsByField[field]
}

// RequirementForTitle looks up a single catalog entry by exact title.
// Lookup is case-sensitive by design: recommendation output keys must
// match catalog keys exactly.
func RequirementForTitle(title string) (types.JobRequirement, bool) {
	for _, jobs := range jobsByField {
		for _, job := range jobs {
			if job.Title == title {
				return job, true
			}
		}
	}
	return types.JobRequirement{}, false
}

// Fields returns all fields that have catalog entries.
func Fields() []string {
	fields := make([]string, 0, len(jobsByField))
	for f := range jobsByField {
		fields = append(fields, f)
	}
	return fields
}
