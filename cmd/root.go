package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "resume-builder",
	Short: "Build resumes and portfolios from a form",
	Long: `resume-builder turns a resume form into a PDF, a Word document and a
portfolio page.

With a job description it can ask an OpenAI compatible model (OpenRouter by
default) to rewrite the summary and bullet points. Names, companies, dates
and skills always come from the form.`,
	PersistentPreRunE: loadDotEnv,
	SilenceUsage:      true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.resume-builder/config.json)")
}

// loadDotEnv reads ./.env into the environment. A missing file is fine.
func loadDotEnv(cmd *cobra.Command, args []string) (err error) {
	err = godotenv.Load()
	if err != nil && os.IsNotExist(err) {
		err = nil
		return err
	}
	if err != nil {
		err = errors.Wrap(err, "failed to load .env")
		return err
	}
	return err
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}
