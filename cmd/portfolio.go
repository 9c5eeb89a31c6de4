package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/nikogura/resume-builder/pkg/config"
	"github.com/nikogura/resume-builder/pkg/renderer"
	"github.com/nikogura/resume-builder/pkg/session"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var noAI bool

//nolint:gochecknoglobals // Cobra boilerplate
var portfolioCmd = &cobra.Command{
	Use:   "portfolio <form-file>",
	Short: "Build a portfolio page from a form",
	Long: `Build a standalone portfolio HTML page from a form file.

When a job description is available (inline in the form or via --jd) the
resume is enhanced first, unless --no-ai is given.

Example:
  resume-builder portfolio me.yaml
  resume-builder portfolio me.yaml --jd jd.txt
  resume-builder portfolio me.yaml --no-ai`,
	Args: cobra.ExactArgs(1),
	RunE: runPortfolio,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(portfolioCmd)
	portfolioCmd.Flags().StringVar(&jdInput, "jd", "", "Job description file, URL, or - for stdin")
	portfolioCmd.Flags().BoolVar(&noAI, "no-ai", false, "Use manual data only")
	portfolioCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (default from config)")
}

func runPortfolio(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	var s *session.Session
	s, err = openSession(args[0], jdInput)
	if err != nil {
		return err
	}

	switch {
	case noAI:
	case s.JobDescription == "":
		if getVerbose() {
			fmt.Println("No job description given, using manual data")
		}
	default:
		ensureEnhancedOrWarn(ctx, s, cfg)
	}

	p := s.Portfolio()
	if getVerbose() {
		number, label := renderer.HeroStat(p)
		printField("Hero", p.HeroName+" - "+p.HeroTitle)
		printField("Stat", number+" "+label)
	}

	var html []byte
	html, err = renderer.PortfolioHTML(p)
	if err != nil {
		return err
	}

	path := artifactPath(getOutputDir(outputDir, cfg.Defaults.OutputDir), s.Form.Basic.Name, "portfolio.html")
	err = renderer.WriteArtifact(html, path)
	if err != nil {
		return err
	}

	printDone("Portfolio saved at: %s", path)
	return err
}

func ensureEnhancedOrWarn(ctx context.Context, s *session.Session, cfg config.Config) {
	gen := newGenerator(cfg)

	err := withSpinner("Enhancing resume with AI...", func() (err error) {
		err = s.EnsureEnhanced(ctx, gen)
		return err
	})
	if err != nil {
		printWarning("AI enhancement failed, using manual data: %s", describeGenerationError(err))
	}
}
