package catalog

import "github.com/jonathan/resume-analyzer/internal/types"

// Certification ladder by candidate level. The cloud ladder always
// contributes one entry; role-specific and filler entries follow.

// CloudCertForLevel returns the AWS ladder entry matching the candidate's
// strongest proficiency band.
func CloudCertForLevel(hasAdvanced, hasIntermediate bool) types.Recommendation {
	switch {
	case hasAdvanced:
		return types.Recommendation{
			Title:       "AWS Certified Solutions Architect Professional",
			Description: "Advanced certification for designing distributed systems on AWS.",
			Provider:    "Amazon",
			Level:       "Professional",
		}
	case hasIntermediate:
		return types.Recommendation{
			Title:       "AWS Certified Developer Associate",
			Description: "Certification for developing and maintaining AWS-based applications.",
			Provider:    "Amazon",
			Level:       "Associate",
		}
	default:
		return types.Recommendation{
			Title:       "AWS Cloud Practitioner",
			Description: "Foundational certification for understanding cloud concepts.",
			Provider:    "Amazon",
			Level:       "Foundational",
		}
	}
}

// DevOpsCertForLevel returns the container-track certification for DevOps
// oriented job types.
func DevOpsCertForLevel(hasAdvanced bool) types.Recommendation {
	if hasAdvanced {
		return types.Recommendation{
			Title:       "Certified Kubernetes Administrator",
			Description: "Advanced certification for Kubernetes administration.",
			Provider:    "CNCF",
			Level:       "Professional",
		}
	}
	return types.Recommendation{
		Title:       "Docker Certified Associate",
		Description: "Foundational certification for container technologies.",
		Provider:    "Docker",
		Level:       "Associate",
	}
}

// FillerCerts returns the cross-cloud certifications used to pad the list
// up to the minimum count, matched to the candidate's level.
func FillerCerts(hasAdvanced bool) []types.Recommendation {
	if hasAdvanced {
		return []types.Recommendation{
			{
				Title:       "Google Cloud Professional Architect",
				Description: "Advanced certification for GCP architecture.",
				Provider:    "Google",
				Level:       "Professional",
			},
			{
				Title:       "Azure Solutions Architect Expert",
				Description: "Expert level certification for Azure architecture.",
				Provider:    "Microsoft",
				Level:       "Expert",
			},
		}
	}
	return []types.Recommendation{
		{
			Title:       "Google Cloud Associate Engineer",
			Description: "Associate level certification for GCP.",
			Provider:    "Google",
			Level:       "Associate",
		},
		{
			Title:       "Azure Developer Associate",
			Description: "Associate level certification for Azure development.",
			Provider:    "Microsoft",
			Level:       "Associate",
		},
	}
}
