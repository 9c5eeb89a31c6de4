package intake

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonForm = `{
  "basic": {"name": "Jane Doe", "email": "jane@example.com", "summary": "Backend engineer"},
  "experience": [
    {"company": "Acme", "role": "Backend Engineer", "start_date": "2020-01-01", "end_date": "2022-01-01", "description": "Built APIs\nImproved latency"}
  ],
  "projects": [
    {"title": "Tracker", "tech_stack": ["Go", "SQL"], "description": ["Tracks things"]}
  ],
  "skills": {"technical": "Go, Kubernetes", "soft": ["Mentoring"]},
  "certifications": "CKA\nAWS SAA"
}`

const yamlForm = `basic:
  name: Jane Doe
  email: jane@example.com
experience:
  - company: Acme
    role: Backend Engineer
    start_date: 2020-01-01
    end_date: 2022
    current: false
    description: |
      Built APIs
      Improved latency
projects:
  - title: Tracker
    tech_stack: Go, SQL
education:
  - institution: State University
    degree: BSc
    details: "GPA: 3.8"
certifications:
  - CKA
  - name: AWS SAA
    issuing_authority: Amazon
skills:
  technical: [Go, Kubernetes]
`

const tomlForm = `target_role = "Staff Engineer"

[basic]
name = "Jane Doe"
email = "jane@example.com"

[skills]
technical = "Go, Kubernetes"

[[experience]]
company = "Acme"
role = "Backend Engineer"
start_date = 2020
current = true
description = ["Built APIs", "Improved latency"]
`

func writeForm(t *testing.T, name, content string) (path string) {
	t.Helper()

	path = filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)

	return path
}

func TestLoadJSON(t *testing.T) {
	form, err := Load(writeForm(t, "form.json", jsonForm))
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", form.Basic.Name)
	require.Len(t, form.Experience, 1)
	assert.Equal(t, []string{"Built APIs", "Improved latency"}, form.Experience[0].Description.ByLine())
	assert.Equal(t, []string{"Go", "SQL"}, form.Projects[0].TechStack.ByComma())
	assert.Equal(t, []string{"Mentoring"}, form.Skills.Soft.Items)
	require.Len(t, form.Certifications, 2)
	assert.Equal(t, "AWS SAA", form.Certifications[1].Display())
}

func TestLoadYAML(t *testing.T) {
	form, err := Load(writeForm(t, "form.yaml", yamlForm))
	require.NoError(t, err)

	require.Len(t, form.Experience, 1)
	e := form.Experience[0]
	assert.Equal(t, "2020-01-01", e.StartDate)
	assert.Equal(t, "2022", e.EndDate)
	assert.False(t, e.Current)
	assert.Equal(t, []string{"Built APIs", "Improved latency"}, e.Description.ByLine())

	assert.Equal(t, []string{"Go", "SQL"}, form.Projects[0].TechStack.ByComma())
	assert.Equal(t, "GPA: 3.8", form.Education[0].Details)
	assert.Equal(t, []string{"Go", "Kubernetes"}, form.Skills.Technical.Items)

	require.Len(t, form.Certifications, 2)
	assert.Equal(t, "CKA", form.Certifications[0].Display())
	assert.Equal(t, "AWS SAA – Amazon", form.Certifications[1].Display())
}

func TestLoadTOML(t *testing.T) {
	form, err := Load(writeForm(t, "form.toml", tomlForm))
	require.NoError(t, err)

	assert.Equal(t, "Staff Engineer", form.TargetRole)
	require.Len(t, form.Experience, 1)
	assert.Equal(t, "2020", form.Experience[0].StartDate)
	assert.True(t, form.Experience[0].Current)
	assert.Equal(t, []string{"Built APIs", "Improved latency"}, form.Experience[0].Description.ByLine())
	assert.Equal(t, []string{"Go", "Kubernetes"}, form.Skills.Technical.ByComma())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "unsupported extension", file: "form.txt", content: "name: x"},
		{name: "invalid json", file: "form.json", content: "{"},
		{name: "invalid yaml", file: "form.yml", content: "basic: [unclosed"},
		{name: "invalid toml", file: "form.toml", content: "basic = = 1"},
		{name: "missing name", file: "form.json", content: `{"basic": {"email": "jane@example.com"}}`},
		{name: "missing email", file: "form.json", content: `{"basic": {"name": "Jane"}}`},
		{name: "bad description type", file: "form.json", content: `{"basic": {"name": "Jane", "email": "j@x.com"}, "experience": [{"role": "x", "description": {"a": 1}}]}`},
		{name: "untitled project", file: "form.json", content: `{"basic": {"name": "Jane", "email": "j@x.com"}, "projects": [{"title": " "}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeForm(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestTextNumbers(t *testing.T) {
	in := map[string]interface{}{
		"year":  2020,
		"big":   int64(2021),
		"gpa":   3.8,
		"flag":  true,
		"items": []interface{}{1, "two"},
	}

	out := textNumbers(in).(map[string]interface{})

	assert.Equal(t, "2020", out["year"])
	assert.Equal(t, "2021", out["big"])
	assert.Equal(t, "3.8", out["gpa"])
	assert.Equal(t, true, out["flag"])
	assert.Equal(t, []interface{}{"1", "two"}, out["items"])
	assert.Equal(t, 2020, in["year"])
}
