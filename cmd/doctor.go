package cmd

import (
	"github.com/spf13/cobra"

	"flutter-setup/internal/flutter"
	"flutter-setup/internal/installer"
	"flutter-setup/internal/prompt"
	"flutter-setup/internal/runner"
	"flutter-setup/internal/scaffold"
)

var doctorDryRun bool

// doctorCmd validates the managed SDK with flutter doctor. Unlike the run
// pipeline it always offers Android license acceptance when doctor reports
// pending licenses, since whoever runs it asked for a checkup.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run flutter doctor against the managed SDK",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := flutter.DefaultRoot()
		if err != nil {
			return err
		}

		w := scaffold.NewWriter(doctorDryRun)
		if !w.Exists(flutter.BinPath(root)) {
			return installer.NewPrereqError("no Flutter SDK at "+root+"; run `flutter-setup sdk` first", nil)
		}

		ask := prompt.Confirm
		if doctorDryRun {
			ask = prompt.Always
		}
		doctor := &flutter.Doctor{
			Runner:  runner.New(doctorDryRun),
			Ask:     ask,
			Bin:     flutter.BinPath(root),
			Android: true,
		}
		return doctor.Run()
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorDryRun, "dry-run", false, "Preview every action without executing it")
}
