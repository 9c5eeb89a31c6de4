package audit

// Rule represents a merge audit rule.
type Rule struct {
	Name        string
	Category    string // identity, structure, quality
	Severity    string // critical, major, minor
	Description string
	Weight      int // Points deducted for violation
}

// Severity levels.
const (
	SeverityCritical = "critical"
	SeverityMajor    = "major"
	SeverityMinor    = "minor"
)

// Rule names.
const (
	RuleIdentityOverwritten  = "IDENTITY_OVERWRITTEN"
	RuleEntryCountMismatch   = "ENTRY_COUNT_MISMATCH"
	RuleStructureOverwritten = "STRUCTURE_OVERWRITTEN"
	RuleSkillsNotManual      = "SKILLS_NOT_MANUAL"
	RuleEmptyBullets         = "EMPTY_BULLETS"
)

//nolint:gochecknoglobals // Audit configuration constants
var Rules = map[string]Rule{
	RuleIdentityOverwritten: {
		Name:        RuleIdentityOverwritten,
		Category:    "identity",
		Severity:    SeverityCritical,
		Description: "Identity or contact field differs from the form",
		Weight:      30,
	},
	RuleEntryCountMismatch: {
		Name:        RuleEntryCountMismatch,
		Category:    "structure",
		Severity:    SeverityCritical,
		Description: "Experience or project entries were added or dropped",
		Weight:      30,
	},
	RuleStructureOverwritten: {
		Name:        RuleStructureOverwritten,
		Category:    "structure",
		Severity:    SeverityMajor,
		Description: "Company, role, period, title, duration, tech stack or link differs from the form",
		Weight:      15,
	},
	RuleSkillsNotManual: {
		Name:        RuleSkillsNotManual,
		Category:    "structure",
		Severity:    SeverityMajor,
		Description: "Skills differ from the normalized form skills",
		Weight:      15,
	},
	RuleEmptyBullets: {
		Name:        RuleEmptyBullets,
		Category:    "quality",
		Severity:    SeverityMinor,
		Description: "Entry has no description bullets",
		Weight:      5,
	},
}
