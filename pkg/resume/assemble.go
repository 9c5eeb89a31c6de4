package resume

import (
	"strings"
)

// Assemble builds the canonical resume from manual data and an optional
// enhancement. A nil enhancement means generated data is absent, and the
// result is built from manual data alone.
//
// Identity and structure always come from the form. The enhancement can only
// supply the summary, whole-list education, bullets of matched entries,
// certifications when none were entered, and a location when none was given.
// Generated skill lists are never used.
func Assemble(form Form, enhancement *Enhancement) (r Resume) {
	ai := Enhancement{}
	if enhancement != nil {
		ai = *enhancement
	}

	basic := form.Basic
	skills := SkillSet{
		Technical: NormalizeSkills(form.Skills.Technical),
		Soft:      NormalizeSkills(form.Skills.Soft),
	}

	contact := ContactInfo{
		Name:     basic.Name,
		Email:    basic.Email,
		Phone:    basic.Phone,
		Location: basic.Location,
		LinkedIn: basic.LinkedIn,
		GitHub:   basic.GitHub,
	}

	r = Resume{
		Contact:         contact,
		Summary:         basic.Summary,
		Headline:        basic.Headline,
		TargetRole:      form.TargetRole,
		Experience:      NormalizeExperience(form.Experience, ai.Experience),
		Projects:        NormalizeProjects(form.Projects, ai.Projects),
		Skills:          skills,
		ProfileImageURL: basic.ProfileImageURL,
		ResumeLink:      basic.ResumeLink,
	}

	if strings.TrimSpace(r.Contact.Location) == "" && ai.Contact.Location.State() == Present {
		r.Contact.Location = strings.TrimSpace(ai.Contact.Location.Value)
	}

	if ai.Summary.State() == Present {
		r.Summary = strings.TrimSpace(ai.Summary.Value)
	}

	if ai.Education.State() == Present {
		r.Education = append(make([]EducationEntry, 0, len(ai.Education.Items)), ai.Education.Items...)
	} else {
		r.Education = append(make([]EducationEntry, 0, len(form.Education)), form.Education...)
	}

	if len(form.Certifications) > 0 {
		r.Certifications = append(make([]Certification, 0, len(form.Certifications)), form.Certifications...)
	} else {
		r.Certifications = append(make([]Certification, 0, len(ai.Certifications.Items)), ai.Certifications.Items...)
	}

	return r
}
