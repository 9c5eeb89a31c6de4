// Package resume holds the resume data model and the layer that merges manual
// form data with generated enhancements into one canonical record.
package resume

// Resume is the canonical record handed to every renderer.
type Resume struct {
	Contact         ContactInfo       `json:"contact"`
	Summary         string            `json:"professional_summary"`
	Headline        string            `json:"headline,omitempty"`
	TargetRole      string            `json:"target_role,omitempty"`
	Education       []EducationEntry  `json:"education"`
	Experience      []ExperienceEntry `json:"experience"`
	Projects        []ProjectEntry    `json:"projects"`
	Skills          SkillSet          `json:"skills"`
	Certifications  []Certification   `json:"certifications"`
	ProfileImageURL string            `json:"profile_image_url,omitempty"`
	ResumeLink      string            `json:"resume_link,omitempty"`
}

// ContactInfo identifies the person the resume is for.
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExperienceEntry is a normalized role.
type ExperienceEntry struct {
	Company  string   `json:"company"`
	Role     string   `json:"role"`
	Location string   `json:"location"`
	Period   string   `json:"period"`
	Bullets  []string `json:"description"`
}

// ProjectEntry is a normalized project.
type ProjectEntry struct {
	Title      string   `json:"title"`
	Duration   string   `json:"duration"`
	TechStack  []string `json:"tech_stack"`
	Bullets    []string `json:"description"`
	GitHubLink string   `json:"github_link"`
}

// SkillSet groups skills for display.
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}
