package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/nikogura/resume-builder/pkg/llm"
	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testForm = `{
  "basic": {"name": "Jane Doe", "email": "jane@example.com", "summary": "Backend engineer"},
  "experience": [
    {"company": "Acme", "role": "Backend Engineer", "start_date": "2020", "end_date": "2022", "description": "Built APIs\nImproved latency"}
  ],
  "skills": {"technical": "Go, Kubernetes"}
}`

// completionServer answers every chat completion with content and counts requests.
func completionServer(t *testing.T, content string, hits *int32) (server *httptest.Server) {
	t.Helper()

	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)

		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Expected bearer token, got '%s'", got)
		}

		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)

	return server
}

// writeJD writes a job description file and points --jd at it.
func writeJD(t *testing.T) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hiring a Go engineer"), 0600))
	jdInput = path
}

// buildFixture points the command globals at a temp workspace and restores them afterwards.
func buildFixture(t *testing.T, configJSON string) (formPath, outDir string) {
	t.Helper()

	for _, name := range []string{"OPENROUTER_API_KEY", "RESUME_BUILDER_MODEL", "OPENROUTER_BASE_URL", "CHROME_PATH"} {
		t.Setenv(name, "")
	}

	dir := t.TempDir()
	formPath = filepath.Join(dir, "form.json")
	require.NoError(t, os.WriteFile(formPath, []byte(testForm), 0600))

	cfgPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configJSON), 0600))

	outDir = filepath.Join(dir, "out")

	prevConfig, prevOut, prevJD, prevEnhance, prevFormats, prevNoAI := configFile, outputDir, jdInput, enhance, formats, noAI
	t.Cleanup(func() {
		configFile, outputDir, jdInput, enhance, formats, noAI = prevConfig, prevOut, prevJD, prevEnhance, prevFormats, prevNoAI
	})

	configFile = cfgPath
	outputDir = outDir
	jdInput = ""
	enhance = false
	noAI = false
	formats = []string{"docx", "html", "json"}

	return formPath, outDir
}

func readResumeJSON(t *testing.T, outDir string) (r resume.Resume) {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(outDir, "jane-doe-resume.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &r))

	return r
}

func TestRunBuildManual(t *testing.T) {
	formPath, outDir := buildFixture(t, `{}`)

	err := runBuild(nil, []string{formPath})
	require.NoError(t, err)

	for _, name := range []string{"jane-doe-resume.docx", "jane-doe-portfolio.html", "jane-doe-resume.json"} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}

	r := readResumeJSON(t, outDir)
	assert.Equal(t, "Jane Doe", r.Contact.Name)
	assert.Equal(t, "Backend engineer", r.Summary)
	assert.Equal(t, []string{"Built APIs", "Improved latency"}, r.Experience[0].Bullets)
	assert.Equal(t, "2020 – 2022", r.Experience[0].Period)
}

func TestRunBuildEnhanceFailureFallsBack(t *testing.T) {
	formPath, outDir := buildFixture(t, `{}`)

	writeJD(t)
	enhance = true

	// No API key: enhancement fails before any request and the manual data is kept.
	err := runBuild(nil, []string{formPath})
	require.NoError(t, err)

	r := readResumeJSON(t, outDir)
	assert.Equal(t, "Backend engineer", r.Summary)
}

func TestRunBuildEnhance(t *testing.T) {
	content := `{"summary": "Go engineer who ships", "experience": [{"title": "backend engineer", "bullets": ["Shipped payments API"]}], "skills": ["COBOL"]}`

	var hits int32
	server := completionServer(t, content, &hits)

	formPath, outDir := buildFixture(t, `{"openrouter_api_key": "test-key", "base_url": "`+server.URL+`"}`)

	writeJD(t)
	enhance = true
	formats = []string{"json"}

	err := runBuild(nil, []string{formPath})
	require.NoError(t, err)

	r := readResumeJSON(t, outDir)
	assert.Equal(t, "Go engineer who ships", r.Summary)
	assert.Equal(t, []string{"Shipped payments API"}, r.Experience[0].Bullets)
	assert.Equal(t, "Acme", r.Experience[0].Company)
	assert.Equal(t, []string{"Go", "Kubernetes"}, r.Skills.Technical)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestRunBuildUnknownFormat(t *testing.T) {
	formPath, _ := buildFixture(t, `{}`)
	formats = []string{"rtf"}

	err := runBuild(nil, []string{formPath})
	assert.Error(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Jane Doe", "jane-doe"},
		{"  José Álvarez ", "jose-alvarez"},
		{"Pat Limited", "pat-limited"},
		{"Jane Doe Inc", "jane-doe-inc"},
		{"O'Brien, Pat", "o-brien-pat"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := sanitizeFilename(tt.input)
			if result != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, result)
			}
		})
	}
}

func TestArtifactPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "jane-doe-resume.pdf"), artifactPath("out", "Jane Doe", "resume.pdf"))
	assert.Equal(t, filepath.Join("out", "resume-builder-resume.pdf"), artifactPath("out", "", "resume.pdf"))
}

func TestGetOutputDir(t *testing.T) {
	assert.Equal(t, "flag", getOutputDir("flag", "config"))
	assert.Equal(t, "config", getOutputDir("", "config"))
}

func TestDescribeGenerationError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"config", &llm.ConfigError{Message: "missing API key"}, "OPENROUTER_API_KEY"},
		{"upstream", errors.Wrap(&llm.UpstreamError{StatusCode: 502, Body: "bad gateway"}, "resume enhancement failed"), "status 502: bad gateway"},
		{"upstream message", &llm.UpstreamError{StatusCode: 429, Body: `{"error": {"message": "rate limited"}}`, Message: "rate limited"}, "status 429: rate limited"},
		{"transport", &llm.TransportError{Err: errors.New("connection refused")}, "connection refused"},
		{"payload", &llm.PayloadError{Reason: "content is not JSON"}, "content is not JSON"},
		{"other", errors.New("please fill at least job description"), "job description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := describeGenerationError(tt.err)
			if !strings.Contains(msg, tt.contains) {
				t.Errorf("Expected '%s' in '%s'", tt.contains, msg)
			}
		})
	}
}
