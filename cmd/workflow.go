package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nikogura/resume-builder/pkg/config"
	"github.com/nikogura/resume-builder/pkg/intake"
	"github.com/nikogura/resume-builder/pkg/jd"
	"github.com/nikogura/resume-builder/pkg/llm"
	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/nikogura/resume-builder/pkg/sanitize"
	"github.com/nikogura/resume-builder/pkg/session"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals // Cobra boilerplate
var outputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var jdInput string

func loadConfig() (cfg config.Config, err error) {
	if getVerbose() {
		path := getConfigFile()
		if path == "" {
			path, _ = config.DefaultPath()
		}
		fmt.Printf("Loading config from: %s\n", path)
	}

	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, err
	}

	return cfg, err
}

// openSession loads the form and, when given, the job description that
// replaces the form's inline one.
func openSession(formPath, jdSource string) (s *session.Session, err error) {
	if getVerbose() {
		fmt.Printf("Loading form from: %s\n", formPath)
	}

	var form resume.Form
	form, err = intake.Load(formPath)
	if err != nil {
		return s, err
	}

	s = session.New(form)

	if jdSource != "" {
		var jobDescription string
		jobDescription, err = fetchAndLogJD(jdSource)
		if err != nil {
			return s, err
		}
		s.SetJobDescription(jobDescription)
	}

	if getVerbose() {
		fmt.Printf("Session %s for %s\n", s.ID, form.Basic.Name)
	}

	return s, err
}

func fetchAndLogJD(source string) (jobDescription string, err error) {
	if getVerbose() {
		fmt.Printf("Loading job description from: %s\n", source)
	}

	jobDescription, err = jd.Fetch(source)
	if err != nil {
		if source != jd.StdinSource {
			fmt.Println("Tip: JavaScript-rendered job pages often fail to fetch. Save the text and pass --jd - to read it from stdin.")
		}
		return jobDescription, err
	}

	if getVerbose() {
		fmt.Printf("Job description loaded (%d characters)\n", len(jobDescription))
	}

	return jobDescription, err
}

func newGenerator(cfg config.Config) (client *llm.Client) {
	title := cfg.AppTitle
	if title == "" {
		title = llm.DefaultAppTitle
	}

	client = llm.NewClient(cfg.OpenRouterAPIKey, cfg.Model,
		llm.WithBaseURL(cfg.BaseURL),
		llm.WithTimeout(cfg.Timeout()),
		llm.WithAttribution(cfg.Referer, title),
	)

	if getVerbose() {
		fmt.Printf("Using model: %s\n", client.Model())
	}

	return client
}

// describeGenerationError turns a generation failure into one line for the user.
func describeGenerationError(err error) (msg string) {
	var configErr *llm.ConfigError
	var upstreamErr *llm.UpstreamError
	var transportErr *llm.TransportError
	var payloadErr *llm.PayloadError

	switch {
	case errors.As(err, &configErr):
		msg = configErr.Message + " (set openrouter_api_key in config or OPENROUTER_API_KEY)"
	case errors.As(err, &upstreamErr):
		detail := upstreamErr.Message
		if detail == "" {
			detail = upstreamErr.Body
		}
		msg = fmt.Sprintf("API returned status %d: %s", upstreamErr.StatusCode, detail)
	case errors.As(err, &transportErr):
		msg = fmt.Sprintf("could not reach the generation API: %v", transportErr.Err)
	case errors.As(err, &payloadErr):
		msg = "the model reply could not be used: " + payloadErr.Reason
	default:
		msg = err.Error()
	}

	return msg
}

func getOutputDir(flagValue, configValue string) (outDir string) {
	outDir = flagValue
	if outDir == "" {
		outDir = configValue
	}
	return outDir
}

// artifactPath builds <dir>/<name>-<suffix> from the resume owner's name.
func artifactPath(dir, name, suffix string) (path string) {
	base := sanitizeFilename(name)
	if base == "" {
		base = "resume-builder"
	}
	path = filepath.Join(dir, base+"-"+suffix)
	return path
}

// sanitizeFilename converts a person's name to a safe filename component.
func sanitizeFilename(name string) (sanitized string) {
	sanitized = sanitize.Text(name)

	// Convert to lowercase
	sanitized = strings.ToLower(sanitized)

	// Replace spaces and special chars with hyphens
	sanitized = strings.Map(func(r rune) (result rune) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			result = r
			return result
		}
		result = '-'
		return result
	}, sanitized)

	// Remove consecutive hyphens
	for strings.Contains(sanitized, "--") {
		sanitized = strings.ReplaceAll(sanitized, "--", "-")
	}

	// Trim hyphens from ends
	sanitized = strings.Trim(sanitized, "-")

	return sanitized
}
