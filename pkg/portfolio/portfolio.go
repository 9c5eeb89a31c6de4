// Package portfolio reshapes a canonical resume for the portfolio page.
package portfolio

import (
	"strings"

	"github.com/nikogura/resume-builder/pkg/resume"
)

// Portfolio is the presentation record rendered as the portfolio page.
type Portfolio struct {
	HeroName        string                  `json:"hero_name"`
	HeroTitle       string                  `json:"hero_title"`
	HeroSummary     string                  `json:"hero_summary"`
	AboutMe         string                  `json:"about_me"`
	ProfileImage    string                  `json:"profile_image,omitempty"`
	Education       []resume.EducationEntry `json:"education"`
	Experience      []TimelineEntry         `json:"experience"`
	Projects        []ProjectCard           `json:"projects"`
	Skills          []string                `json:"skills"`
	Certifications  []resume.Certification  `json:"certifications"`
	ContactEmail    string                  `json:"contact_email"`
	ContactLinkedIn string                  `json:"contact_linkedin,omitempty"`
	ContactGitHub   string                  `json:"contact_github,omitempty"`
	ResumeLink      string                  `json:"resume_link,omitempty"`
}

// TimelineEntry is one role on the experience timeline.
type TimelineEntry struct {
	Title   string   `json:"title"`
	Company string   `json:"company"`
	Period  string   `json:"period"`
	Bullets []string `json:"bullets"`
}

// ProjectCard is one project card.
type ProjectCard struct {
	Name       string   `json:"name"`
	Duration   string   `json:"duration"`
	TechStack  []string `json:"tech_stack"`
	Highlights []string `json:"highlights"`
	GitHubLink string   `json:"github_link"`
}

// Project maps a resume onto the portfolio shape. The hero title prefers the
// headline, then the target role, then the summary.
func Project(r resume.Resume) (p Portfolio) {
	p = Portfolio{
		HeroName:        r.Contact.Name,
		HeroTitle:       firstNonBlank(r.Headline, r.TargetRole, r.Summary),
		HeroSummary:     r.Summary,
		AboutMe:         r.Summary,
		ProfileImage:    r.ProfileImageURL,
		Education:       append([]resume.EducationEntry{}, r.Education...),
		Experience:      make([]TimelineEntry, 0, len(r.Experience)),
		Projects:        make([]ProjectCard, 0, len(r.Projects)),
		Skills:          make([]string, 0, len(r.Skills.Technical)+len(r.Skills.Soft)),
		Certifications:  append([]resume.Certification{}, r.Certifications...),
		ContactEmail:    r.Contact.Email,
		ContactLinkedIn: r.Contact.LinkedIn,
		ContactGitHub:   r.Contact.GitHub,
		ResumeLink:      r.ResumeLink,
	}

	for _, e := range r.Experience {
		p.Experience = append(p.Experience, TimelineEntry{
			Title:   e.Role,
			Company: e.Company,
			Period:  e.Period,
			Bullets: append([]string{}, e.Bullets...),
		})
	}

	for _, pr := range r.Projects {
		p.Projects = append(p.Projects, ProjectCard{
			Name:       pr.Title,
			Duration:   pr.Duration,
			TechStack:  append([]string{}, pr.TechStack...),
			Highlights: append([]string{}, pr.Bullets...),
			GitHubLink: pr.GitHubLink,
		})
	}

	p.Skills = append(p.Skills, r.Skills.Technical...)
	p.Skills = append(p.Skills, r.Skills.Soft...)

	return p
}

func firstNonBlank(values ...string) (value string) {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			value = v
			return value
		}
	}

	return value
}
