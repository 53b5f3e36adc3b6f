package types

// WeightedSkill is a skill requirement with an importance weight in [1,10].
type WeightedSkill struct {
	Name       string `json:"name"`
	Importance int    `json:"importance"`
}

// SalaryRange holds annual salary bounds in whole currency units.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// CertRef describes a certification attached to a job requirement.
type CertRef struct {
	Title       string `json:"title"`
	Provider    string `json:"provider"`
	Description string `json:"description,omitempty"`
	Level       string `json:"level,omitempty"`
	Link        string `json:"link,omitempty"`
}

// JobRequirement is a static catalog entry mapping a job title to the
// skills, education, and certifications it calls for. Required skills
// carry 70% of the skill-match score, preferred skills 30%.
type JobRequirement struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	RequiredSkills  []WeightedSkill `json:"required_skills"`
	PreferredSkills []WeightedSkill `json:"preferred_skills"`
	EducationFields []string        `json:"education_fields"`
	Salary          SalaryRange     `json:"salary_range"`
	Certifications  []CertRef       `json:"certifications,omitempty"`
}
