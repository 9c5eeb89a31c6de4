package renderer

import (
	"github.com/nikogura/resume-builder/pkg/resume"
)

// testResume is a canonical resume with non-ASCII text in most fields.
func testResume() (r resume.Resume) {
	r = resume.Resume{
		Contact: resume.ContactInfo{
			Name:     "José Müller",
			Email:    "jose@example.com",
			Phone:    "+49 30 1234",
			Location: "Berlin",
			GitHub:   "https://github.com/jose",
		},
		Summary: "Engineer — builds “reliable” systems",
		Education: []resume.EducationEntry{
			{Institution: "TU Berlin", Degree: "MSc Informatik", Period: "2014 – 2016", Details: "CGPA: 3.9"},
		},
		Experience: []resume.ExperienceEntry{
			{Company: "Acme & Co", Role: "Backend Engineer", Period: "2020-01-01 – 2022-01-01", Bullets: []string{"Built APIs", "Cut latency by 40 %"}},
		},
		Projects: []resume.ProjectEntry{
			{Title: "Tracker", Duration: "2023", TechStack: []string{"Go", "SQL"}, Bullets: []string{"Tracks <things>"}, GitHubLink: "https://github.com/jose/tracker"},
		},
		Skills: resume.SkillSet{Technical: []string{"Go", "Kubernetes"}, Soft: []string{"Mentoring"}},
		Certifications: []resume.Certification{
			resume.BareCertification("• CKA"),
			{Name: "AWS SAA", IssuingAuthority: "Amazon", IssueDate: "2023", Structured: true},
		},
	}
	return r
}
