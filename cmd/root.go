package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"flutter-setup/internal/config"
	"flutter-setup/internal/installer"
	"flutter-setup/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It can be toggled via the global `--debug` command-line flag.
var debug bool

// errHelpShown marks a bare invocation that only displayed help. The process
// exits non-zero for it, but no error is printed.
var errHelpShown = errors.New("help shown")

// rootCmd is the base command for the CLI tool `flutter-setup`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:   "flutter-setup",
	Short: "Flutter development environment setup for macOS",
	Long: `flutter-setup provisions a complete Flutter development environment:
prerequisites via Homebrew, the Flutter SDK as a git checkout, a freshly
created project, and an editor-ready workspace (VS Code/Cursor settings,
Makefile, test scaffolding, CI workflow, dotenv wiring).`,

	// Errors are reported once by Execute with an explicit exit code, so
	// cobra's own printing stays off.
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRun is a hook that runs before any subcommand.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return errHelpShown
	},
}

// init registers the global flags and the subcommands.
func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Unknown or malformed options are validation failures, same as a bad
	// positional argument.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return config.NewValidationError(err.Error(), nil)
	})

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sdkCmd)
	rootCmd.AddCommand(doctorCmd)
}

// Execute runs the CLI and maps the outcome to the process exit code:
// 0 on success, 2 for validation and prerequisite failures, 1 for anything
// else, including a bare invocation that only shows help.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errHelpShown) {
			logger.Error("[ERROR] %v\n", err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode classifies an error from the command tree.
func exitCode(err error) int {
	var validation *config.ValidationError
	var prereq *installer.PrereqError
	if errors.As(err, &validation) || errors.As(err, &prereq) {
		return 2
	}
	return 1
}
