package offers

import (
	"strings"

	"career-offer-tracker/internal/models"
)

// classificationRule pairs a job type with the title terms that indicate it.
type classificationRule struct {
	jobType models.JobType
	terms   []string
}

// titleRules is evaluated in order; the first rule with a matching term wins.
// Internship terms outrank full-time terms so titles like
// "Full Stack Developer Intern" classify as internships.
var titleRules = []classificationRule{
	{models.JobTypeInternship, []string{"intern", "internship", "trainee", "co-op", "coop"}},
	{models.JobTypeFullTime, []string{"full-time", "full time", "fulltime", "permanent"}},
	{models.JobTypePartTime, []string{"part-time", "part time", "parttime"}},
}

// ClassifyTitle infers a job type from a listing title by case-insensitive
// substring match, falling back to the given type when no rule fires.
func ClassifyTitle(title string, fallback models.JobType) models.JobType {
	lowered := strings.ToLower(title)

	for _, rule := range titleRules {
		for _, term := range rule.terms {
			if strings.Contains(lowered, term) {
				return rule.jobType
			}
		}
	}

	return fallback
}
