package cmd

import (
	"fmt"

	"github.com/nikogura/resume-builder/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write a starter config file to $HOME/.resume-builder/config.json,
or to the path given with --config.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = config.InitConfig(getConfigFile())
	if err != nil {
		return err
	}

	printDone("Config written to %s", path)
	fmt.Println("Set openrouter_api_key there, or export OPENROUTER_API_KEY, before using --enhance or cover-letter.")
	return err
}
