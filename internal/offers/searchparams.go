package offers

import (
	"strings"

	"career-offer-tracker/internal/api/profile"
	"career-offer-tracker/internal/models"
)

// maxSeedSkills bounds how many profile skills seed the default keywords.
const maxSeedSkills = 3

// DeriveSearchParameters produces the default search parameters for a user
// from profile metadata and the computed eligibility. nil metadata yields the
// fixed defaults.
func DeriveSearchParameters(meta *profile.Metadata, elig models.Eligibility) models.SearchParameters {
	params := models.SearchParameters{
		Location:   models.DefaultLocation,
		DatePosted: models.DefaultDatePosted,
	}

	if meta != nil {
		params.Keywords = strings.TrimSpace(meta.Specialization)

		if names := seedSkillNames(meta.Skills); names != "" {
			if !strings.Contains(strings.ToLower(params.Keywords), strings.ToLower(names)) {
				params.Keywords = strings.TrimSpace(params.Keywords + " " + names)
			}
		}

		if loc := strings.TrimSpace(meta.Location); loc != "" {
			params.Location = loc
		}
	}

	if !elig.CanSearchJobs() {
		params.JobType = models.JobTypeInternship.SearchCode()
	}

	return params
}

func seedSkillNames(skills []profile.Skill) string {
	var names []string
	for _, s := range skills {
		if len(names) == maxSeedSkills {
			break
		}
		if name := strings.TrimSpace(s.Name); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, " ")
}
