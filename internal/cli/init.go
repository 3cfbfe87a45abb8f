package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hrsuite/cvadmin/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init <base-url>",
	Short: "Create the cvadmin configuration",
	Long: `Initialize the cvadmin configuration directory with the backend
base URL.

Examples:
  cvadmin init https://hr.example.az
  CVADMIN_CONFIG=/tmp/cvadmin cvadmin init http://localhost:5000`,
	Args: cobra.ExactArgs(1),
	Run:  runInit,
}

func runInit(cmd *cobra.Command, args []string) {
	cfg, err := config.Initialize(args[0])
	if err != nil {
		exitError("%v", err)
	}
	fmt.Printf("Initialized cvadmin configuration in %s\n", cfg.Path())
}
