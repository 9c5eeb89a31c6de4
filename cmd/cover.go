package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/nikogura/resume-builder/pkg/config"
	"github.com/nikogura/resume-builder/pkg/renderer"
	"github.com/nikogura/resume-builder/pkg/session"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var coverCmd = &cobra.Command{
	Use:   "cover-letter <form-file>",
	Short: "Write a cover letter for a job description",
	Long: `Write a cover letter from a form file and a job description.

The letter is printed and saved as <name>-cover-letter.txt.

Example:
  resume-builder cover-letter me.yaml --jd jd.txt
  pbpaste | resume-builder cover-letter me.yaml --jd -`,
	Args: cobra.ExactArgs(1),
	RunE: runCover,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(coverCmd)
	coverCmd.Flags().StringVar(&jdInput, "jd", "", "Job description file, URL, or - for stdin")
	coverCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (default from config)")
}

func runCover(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	err = cfg.RequireAPIKey()
	if err != nil {
		return err
	}

	var s *session.Session
	s, err = openSession(args[0], jdInput)
	if err != nil {
		return err
	}

	gen := newGenerator(cfg)

	var letter string
	err = withSpinner("Writing cover letter...", func() (err error) {
		letter, err = s.WriteCoverLetter(ctx, gen)
		return err
	})
	if err != nil {
		err = errors.New(describeGenerationError(err))
		return err
	}

	printTitle("Cover letter")
	fmt.Println(letter)

	path := artifactPath(getOutputDir(outputDir, cfg.Defaults.OutputDir), s.Form.Basic.Name, "cover-letter.txt")
	err = renderer.WriteArtifact([]byte(letter+"\n"), path)
	if err != nil {
		return err
	}

	printDone("Cover letter saved at: %s", path)
	return err
}
