package resume

// Enhancement is a well-formed payload returned by the generation API. Every
// field is tri-state so an omitted field and an explicitly empty one are told
// apart.
type Enhancement struct {
	Contact         AIContact            `json:"contact"`
	Summary         Text                 `json:"summary"`
	Education       List[EducationEntry] `json:"education"`
	Experience      List[AIExperience]   `json:"experience"`
	Projects        List[AIProject]      `json:"projects"`
	Skills          List[string]         `json:"skills"`
	TechnicalSkills List[string]         `json:"technical_skills"`
	SoftSkills      List[string]         `json:"soft_skills"`
	Certifications  List[Certification]  `json:"certifications"`
}

// AIContact is the generated contact block. Only Location is ever used.
type AIContact struct {
	Name     Text `json:"name"`
	Email    Text `json:"email"`
	Phone    Text `json:"phone"`
	Location Text `json:"location"`
	LinkedIn Text `json:"linkedin"`
	GitHub   Text `json:"github"`
}

// AIExperience is a generated role.
type AIExperience struct {
	Company  string       `json:"company"`
	Title    string       `json:"title"`
	Location string       `json:"location"`
	Period   string       `json:"period"`
	Bullets  List[string] `json:"bullets"`
}

// AIProject is a generated project.
type AIProject struct {
	Name      string       `json:"name"`
	TechStack StringList   `json:"tech_stack"`
	Period    string       `json:"period"`
	Bullets   List[string] `json:"bullets"`
}
