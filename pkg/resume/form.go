package resume

// Form is the manually entered resume data.
type Form struct {
	Basic          BasicInfo          `json:"basic"`
	TargetRole     string             `json:"target_role,omitempty"`
	Education      []EducationEntry   `json:"education,omitempty"`
	Experience     []ManualExperience `json:"experience,omitempty"`
	Projects       []ManualProject    `json:"projects,omitempty"`
	Skills         ManualSkills       `json:"skills"`
	Certifications Certifications     `json:"certifications,omitempty"`
	JobDescription string             `json:"job_description,omitempty"`
}

// BasicInfo holds identity and contact fields.
type BasicInfo struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Location        string `json:"location,omitempty"`
	LinkedIn        string `json:"linkedin,omitempty"`
	GitHub          string `json:"github,omitempty"`
	Summary         string `json:"summary,omitempty"`
	Headline        string `json:"headline,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	ResumeLink      string `json:"resume_link,omitempty"`
}

// EducationEntry is shared by the form, the generated payload and the resume.
type EducationEntry struct {
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	Degree      string `json:"degree"`
	Period      string `json:"period,omitempty"`
	Details     string `json:"details,omitempty"`
}

// ManualExperience is one role as entered by the user.
type ManualExperience struct {
	Company     string     `json:"company"`
	Role        string     `json:"role"`
	StartDate   string     `json:"start_date,omitempty"`
	EndDate     string     `json:"end_date,omitempty"`
	Current     bool       `json:"current,omitempty"`
	Description StringList `json:"description"`
}

// ManualProject is one project as entered by the user.
type ManualProject struct {
	Title       string     `json:"title"`
	Duration    string     `json:"duration,omitempty"`
	TechStack   StringList `json:"tech_stack"`
	Description StringList `json:"description"`
	GitHubLink  string     `json:"github_link,omitempty"`
}

// ManualSkills are entered as comma or newline separated text, or as lists.
type ManualSkills struct {
	Technical StringList `json:"technical"`
	Soft      StringList `json:"soft"`
}
