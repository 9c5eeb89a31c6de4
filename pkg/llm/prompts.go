package llm

import (
	"fmt"
	"strings"

	"github.com/nikogura/resume-builder/pkg/resume"
)

const enhanceSystemPrompt = `You are an expert resume writer. Given a resume and a job description, return ONLY valid JSON in this exact structure (no markdown, no commentary):
{
  "contact": {"name": "", "email": "", "phone": "", "location": "", "linkedin": "", "github": ""},
  "summary": "",
  "education": [{"institution": "", "location": "", "degree": "", "period": ""}],
  "experience": [{"company": "", "title": "", "location": "", "period": "", "bullets": [""]}],
  "projects": [{"name": "", "tech_stack": [""], "period": "", "bullets": [""]}],
  "skills": [""],
  "technical_skills": [""],
  "soft_skills": [""],
  "certifications": [{"name": "", "issuing_authority": "", "issue_date": "", "certificate_id": ""}]
}`

const coverLetterSystemPrompt = "You are an expert cover letter writer. Return ONLY the text of the letter."

// buildEnhancePrompt creates the user message for an enhancement.
func buildEnhancePrompt(resumeText, jobDescription string) (prompt string) {
	prompt = fmt.Sprintf(`RESUME:
%s

JOB DESCRIPTION:
%s

Rewrite and improve the resume so it strongly matches this job.
- Keep every experience title and project name exactly as written.
- certifications: only real certifications mentioned in the resume; do NOT invent new ones.
Return JSON only.`, resumeText, jobDescription)

	return prompt
}

// buildCoverLetterPrompt creates the user message for a cover letter.
func buildCoverLetterPrompt(resumeText, jobDescription string) (prompt string) {
	prompt = fmt.Sprintf("RESUME:\n%s\n\nJOB:\n%s\n\nWrite a cover letter.", resumeText, jobDescription)
	return prompt
}

// notProvided stands in for an empty skill section.
const notProvided = "Not provided"

// ResumeText renders the manual form as the plain text resume sent to the
// model.
func ResumeText(form resume.Form) (text string) {
	b := &strings.Builder{}
	basic := form.Basic

	b.WriteString(basic.Name + "\n")
	b.WriteString(joinNonEmpty(" | ", basic.Email, basic.Phone, basic.Location) + "\n")
	if basic.LinkedIn != "" {
		fmt.Fprintf(b, "LinkedIn: %s\n", basic.LinkedIn)
	}
	if basic.GitHub != "" {
		fmt.Fprintf(b, "GitHub: %s\n", basic.GitHub)
	}

	section(b, "Summary")
	b.WriteString(basic.Summary + "\n")

	section(b, "Education")
	for _, e := range form.Education {
		line := joinNonEmpty(", ", e.Degree, e.Institution, e.Location)
		if e.Period != "" {
			line += " (" + e.Period + ")"
		}
		if e.Details != "" {
			line += " - " + e.Details
		}
		b.WriteString(line + "\n")
	}

	section(b, "Experience")
	for _, e := range resume.NormalizeExperience(form.Experience, resume.List[resume.AIExperience]{}) {
		fmt.Fprintf(b, "%s at %s", e.Role, e.Company)
		if e.Period != "" {
			fmt.Fprintf(b, " (%s)", e.Period)
		}
		b.WriteString("\n")
		for _, bullet := range e.Bullets {
			fmt.Fprintf(b, "- %s\n", bullet)
		}
	}

	section(b, "Projects")
	for _, p := range resume.NormalizeProjects(form.Projects, resume.List[resume.AIProject]{}) {
		b.WriteString(p.Title)
		if p.Duration != "" {
			fmt.Fprintf(b, " (%s)", p.Duration)
		}
		b.WriteString("\n")
		if len(p.TechStack) > 0 {
			fmt.Fprintf(b, "Tech: %s\n", strings.Join(p.TechStack, ", "))
		}
		for _, bullet := range p.Bullets {
			fmt.Fprintf(b, "- %s\n", bullet)
		}
	}

	section(b, "Technical Skills")
	b.WriteString(orNotProvided(resume.NormalizeSkills(form.Skills.Technical)) + "\n")

	section(b, "Soft Skills")
	b.WriteString(orNotProvided(resume.NormalizeSkills(form.Skills.Soft)) + "\n")

	section(b, "Certifications")
	for _, c := range form.Certifications {
		if line := c.Display(); line != "" {
			fmt.Fprintf(b, "- %s\n", line)
		}
	}

	text = strings.TrimSpace(b.String())
	return text
}

func section(b *strings.Builder, heading string) {
	b.WriteString("\n" + heading + "\n")
}

func joinNonEmpty(sep string, values ...string) (joined string) {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}

	joined = strings.Join(parts, sep)
	return joined
}

func orNotProvided(items []string) (line string) {
	if len(items) == 0 {
		line = notProvided
		return line
	}

	line = strings.Join(items, ", ")
	return line
}
