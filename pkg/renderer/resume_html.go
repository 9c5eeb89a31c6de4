package renderer

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/nikogura/resume-builder/pkg/sanitize"
	"github.com/pkg/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS //nolint:gochecknoglobals // Embedded templates

// templateFuncs returns the helpers shared by the templates. With ascii set,
// certification lines are sanitized after their fields are joined.
func templateFuncs(ascii bool) (funcs template.FuncMap) {
	funcs = template.FuncMap{
		"join": strings.Join,
		"certification": func(c resume.Certification) string {
			if ascii {
				return asciiCertification(c)
			}
			return c.Display()
		},
	}
	return funcs
}

// asciiCertification is the display line of c reduced to ASCII. The fields
// are joined before sanitizing so the separator is reduced too.
func asciiCertification(c resume.Certification) (line string) {
	line = sanitize.Text(c.Display())
	return line
}

func parseTemplate(name string, ascii bool) (tmpl *template.Template, err error) {
	tmpl, err = template.New(name).Funcs(templateFuncs(ascii)).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse template %s", name)
		return tmpl, err
	}

	return tmpl, err
}

// ResumeHTML renders the one page resume as printable HTML. All text is
// reduced to ASCII first so every font can display it.
func ResumeHTML(r resume.Resume) (html []byte, err error) {
	var tmpl *template.Template
	tmpl, err = parseTemplate("resume.html.tmpl", true)
	if err != nil {
		return html, err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, Sanitized(r))
	if err != nil {
		err = errors.Wrap(err, "failed to render resume HTML")
		return html, err
	}

	html = buf.Bytes()
	return html, err
}

// Sanitized returns a copy of r with every text field passed through
// sanitize.Text.
func Sanitized(r resume.Resume) (clean resume.Resume) {
	s := sanitize.Text

	clean = resume.Resume{
		Contact: resume.ContactInfo{
			Name:     s(r.Contact.Name),
			Email:    s(r.Contact.Email),
			Phone:    s(r.Contact.Phone),
			Location: s(r.Contact.Location),
			LinkedIn: s(r.Contact.LinkedIn),
			GitHub:   s(r.Contact.GitHub),
		},
		Summary:         s(r.Summary),
		Headline:        s(r.Headline),
		TargetRole:      s(r.TargetRole),
		Education:       make([]resume.EducationEntry, 0, len(r.Education)),
		Experience:      make([]resume.ExperienceEntry, 0, len(r.Experience)),
		Projects:        make([]resume.ProjectEntry, 0, len(r.Projects)),
		Skills:          resume.SkillSet{Technical: sanitize.Lines(r.Skills.Technical), Soft: sanitize.Lines(r.Skills.Soft)},
		Certifications:  make([]resume.Certification, 0, len(r.Certifications)),
		ProfileImageURL: r.ProfileImageURL,
		ResumeLink:      r.ResumeLink,
	}

	for _, e := range r.Education {
		clean.Education = append(clean.Education, resume.EducationEntry{
			Institution: s(e.Institution),
			Location:    s(e.Location),
			Degree:      s(e.Degree),
			Period:      s(e.Period),
			Details:     s(e.Details),
		})
	}

	for _, e := range r.Experience {
		clean.Experience = append(clean.Experience, resume.ExperienceEntry{
			Company:  s(e.Company),
			Role:     s(e.Role),
			Location: s(e.Location),
			Period:   s(e.Period),
			Bullets:  sanitize.Lines(e.Bullets),
		})
	}

	for _, p := range r.Projects {
		clean.Projects = append(clean.Projects, resume.ProjectEntry{
			Title:      s(p.Title),
			Duration:   s(p.Duration),
			TechStack:  sanitize.Lines(p.TechStack),
			Bullets:    sanitize.Lines(p.Bullets),
			GitHubLink: s(p.GitHubLink),
		})
	}

	for _, c := range r.Certifications {
		c.Text = s(c.Text)
		c.Name = s(c.Name)
		c.IssuingAuthority = s(c.IssuingAuthority)
		c.IssueDate = s(c.IssueDate)
		c.CertificateID = s(c.CertificateID)
		clean.Certifications = append(clean.Certifications, c)
	}

	return clean
}
