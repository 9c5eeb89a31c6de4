// Package audit checks an assembled resume against the form it came from.
// Every violation means generated data leaked into a field that must stay
// as entered, or that an entry is left without content.
package audit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nikogura/resume-builder/pkg/resume"
)

// Violation is one broken rule.
type Violation struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Location string `json:"location"`
	Detail   string `json:"detail"`
}

// Report is the result of an audit.
type Report struct {
	Score      int         `json:"score"`
	Violations []Violation `json:"violations"`
}

// HasCritical reports whether any critical rule was broken.
func (r Report) HasCritical() (critical bool) {
	for _, v := range r.Violations {
		if v.Severity == SeverityCritical {
			critical = true
			return critical
		}
	}

	return critical
}

type checker struct {
	violations []Violation
}

func (c *checker) add(rule, location, format string, args ...interface{}) {
	c.violations = append(c.violations, Violation{
		Rule:     rule,
		Severity: Rules[rule].Severity,
		Location: location,
		Detail:   fmt.Sprintf(format, args...),
	})
}

func (c *checker) same(rule, location, want, got string) {
	if want != got {
		c.add(rule, location, "expected %q, got %q", want, got)
	}
}

// Check audits r against form and scores it from 100 down.
func Check(form resume.Form, r resume.Resume) (report Report) {
	c := &checker{violations: make([]Violation, 0)}
	basic := form.Basic

	c.same(RuleIdentityOverwritten, "contact.name", basic.Name, r.Contact.Name)
	c.same(RuleIdentityOverwritten, "contact.email", basic.Email, r.Contact.Email)
	c.same(RuleIdentityOverwritten, "contact.phone", basic.Phone, r.Contact.Phone)
	c.same(RuleIdentityOverwritten, "contact.linkedin", basic.LinkedIn, r.Contact.LinkedIn)
	c.same(RuleIdentityOverwritten, "contact.github", basic.GitHub, r.Contact.GitHub)
	c.same(RuleIdentityOverwritten, "profile_image_url", basic.ProfileImageURL, r.ProfileImageURL)
	c.same(RuleIdentityOverwritten, "resume_link", basic.ResumeLink, r.ResumeLink)

	checkExperience(c, form.Experience, r.Experience)
	checkProjects(c, form.Projects, r.Projects)

	if !slices.Equal(resume.NormalizeSkills(form.Skills.Technical), r.Skills.Technical) {
		c.add(RuleSkillsNotManual, "skills.technical", "technical skills differ from the form")
	}
	if !slices.Equal(resume.NormalizeSkills(form.Skills.Soft), r.Skills.Soft) {
		c.add(RuleSkillsNotManual, "skills.soft", "soft skills differ from the form")
	}

	report = Report{Score: score(c.violations), Violations: c.violations}
	return report
}

func checkExperience(c *checker, manual []resume.ManualExperience, entries []resume.ExperienceEntry) {
	if len(manual) != len(entries) {
		c.add(RuleEntryCountMismatch, "experience", "expected %d entries, got %d", len(manual), len(entries))
	}

	for i := 0; i < len(manual) && i < len(entries); i++ {
		m, e := manual[i], entries[i]
		loc := fmt.Sprintf("experience[%d]", i)

		c.same(RuleStructureOverwritten, loc+".company", m.Company, e.Company)
		c.same(RuleStructureOverwritten, loc+".role", m.Role, e.Role)
		c.same(RuleStructureOverwritten, loc+".period", resume.Period(m.StartDate, m.EndDate, m.Current), e.Period)

		if len(e.Bullets) == 0 {
			c.add(RuleEmptyBullets, loc, "%s at %s has no bullets", e.Role, e.Company)
		}
	}
}

func checkProjects(c *checker, manual []resume.ManualProject, entries []resume.ProjectEntry) {
	if len(manual) != len(entries) {
		c.add(RuleEntryCountMismatch, "projects", "expected %d entries, got %d", len(manual), len(entries))
	}

	for i := 0; i < len(manual) && i < len(entries); i++ {
		m, p := manual[i], entries[i]
		loc := fmt.Sprintf("projects[%d]", i)

		c.same(RuleStructureOverwritten, loc+".title", strings.TrimSpace(m.Title), p.Title)
		c.same(RuleStructureOverwritten, loc+".duration", m.Duration, p.Duration)
		c.same(RuleStructureOverwritten, loc+".github_link", m.GitHubLink, p.GitHubLink)
		if !slices.Equal(m.TechStack.ByComma(), p.TechStack) {
			c.add(RuleStructureOverwritten, loc+".tech_stack", "tech stack differs from the form")
		}

		if len(p.Bullets) == 0 {
			c.add(RuleEmptyBullets, loc, "%s has no bullets", p.Title)
		}
	}
}

func score(violations []Violation) (total int) {
	total = 100

	for _, v := range violations {
		rule, exists := Rules[v.Rule]
		if !exists {
			continue
		}

		total -= rule.Weight
	}

	if total < 0 {
		total = 0
	}

	return total
}
