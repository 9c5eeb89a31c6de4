package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nikogura/resume-builder/pkg/audit"
	"github.com/nikogura/resume-builder/pkg/config"
	"github.com/nikogura/resume-builder/pkg/renderer"
	"github.com/nikogura/resume-builder/pkg/resume"
	"github.com/nikogura/resume-builder/pkg/session"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var enhance bool

//nolint:gochecknoglobals // Cobra boilerplate
var formats []string

//nolint:gochecknoglobals // Cobra boilerplate
var buildCmd = &cobra.Command{
	Use:   "build <form-file>",
	Short: "Build resume artifacts from a form",
	Long: `Build a resume from a form file (.json, .yaml or .toml).

With --enhance and a job description the summary and bullet points are
rewritten by the model first. If that fails the manual data is used.

Formats:
- pdf   one page resume printed with headless Chrome
- docx  Word document
- html  portfolio page
- json  the assembled resume record

Example:
  resume-builder build me.yaml
  resume-builder build me.yaml --jd https://example.com/jobs/123 --enhance
  resume-builder build me.json --formats pdf,json --output-dir ./out`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&jdInput, "jd", "", "Job description file, URL, or - for stdin")
	buildCmd.Flags().BoolVar(&enhance, "enhance", false, "Enhance summary and bullets with the generation API")
	buildCmd.Flags().StringSliceVar(&formats, "formats", nil, "Output formats (default from config)")
	buildCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (default from config)")
}

func runBuild(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	if len(formats) > 0 {
		cfg.Defaults.Formats = formats
		err = cfg.Validate()
		if err != nil {
			return err
		}
	}

	var s *session.Session
	s, err = openSession(args[0], jdInput)
	if err != nil {
		return err
	}

	if enhance {
		enhanceOrWarn(ctx, s, cfg)
	}

	r := s.Resume()
	reportAudit(audit.Check(s.Form, r))

	outDir := getOutputDir(outputDir, cfg.Defaults.OutputDir)
	failed := 0
	for _, format := range cfg.Defaults.Formats {
		var path string
		path, err = writeFormat(ctx, cfg, s, r, format, outDir)
		if err != nil {
			printWarning("failed to write %s: %v", format, err)
			failed++
			continue
		}
		printDone("%s saved at: %s", strings.ToUpper(format), path)
	}

	if failed > 0 {
		err = errors.Errorf("%d of %d artifacts failed", failed, len(cfg.Defaults.Formats))
		return err
	}

	fmt.Println("\nBuild complete!")
	err = nil
	return err
}

// enhanceOrWarn runs the enhancement and leaves the session on manual data
// when it fails.
func enhanceOrWarn(ctx context.Context, s *session.Session, cfg config.Config) {
	gen := newGenerator(cfg)

	err := withSpinner("Enhancing resume with AI...", func() (err error) {
		err = s.Enhance(ctx, gen)
		return err
	})
	if err != nil {
		printWarning("AI enhancement failed, using manual data: %s", describeGenerationError(err))
		return
	}

	if !getVerbose() {
		printDone("Enhancement complete")
	}
}

func reportAudit(report audit.Report) {
	if getVerbose() {
		printTitle(fmt.Sprintf("Merge audit: %d/100", report.Score))
		for _, v := range report.Violations {
			printField(fmt.Sprintf("[%s] %s", v.Severity, v.Rule), v.Location+": "+v.Detail)
		}
	}

	if report.HasCritical() {
		printWarning("merge audit found critical violations (run with -v for details)")
	}
}

func writeFormat(ctx context.Context, cfg config.Config, s *session.Session, r resume.Resume, format, outDir string) (path string, err error) {
	var data []byte

	switch format {
	case "pdf":
		path = artifactPath(outDir, r.Contact.Name, "resume.pdf")
		printer := renderer.NewChromePrinter(cfg.Chrome.ExecPath)
		err = withSpinner("Printing PDF...", func() (err error) {
			data, err = renderer.PDF(ctx, printer, r)
			return err
		})
	case "docx":
		path = artifactPath(outDir, r.Contact.Name, "resume.docx")
		data, err = renderer.DOCX(r)
	case "html":
		path = artifactPath(outDir, r.Contact.Name, "portfolio.html")
		data, err = renderer.PortfolioHTML(s.Portfolio())
	case "json":
		path = artifactPath(outDir, r.Contact.Name, "resume.json")
		data, err = json.MarshalIndent(r, "", "  ")
		if err != nil {
			err = errors.Wrap(err, "failed to marshal resume")
		}
	default:
		err = errors.Errorf("unknown format %q", format)
	}

	if err != nil {
		return path, err
	}

	err = renderer.WriteArtifact(data, path)
	return path, err
}
