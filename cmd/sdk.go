package cmd

import (
	"github.com/spf13/cobra"

	"flutter-setup/internal/config"
	"flutter-setup/internal/flutter"
	"flutter-setup/internal/logger"
	"flutter-setup/internal/prompt"
	"flutter-setup/internal/runner"
	"flutter-setup/internal/scaffold"
)

var (
	sdkChannel string
	sdkUpdate  string
	sdkDryRun  bool
)

// sdkCmd synchronizes the SDK checkout and persists the PATH entry without
// touching prerequisites or creating a project.
var sdkCmd = &cobra.Command{
	Use:   "sdk",
	Short: "Install or update the Flutter SDK and persist its PATH entry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		channel, err := config.ParseChannel(sdkChannel)
		if err != nil {
			return err
		}
		mode, err := config.ParseUpdateMode(sdkUpdate)
		if err != nil {
			return err
		}

		r := runner.New(sdkDryRun)
		w := scaffold.NewWriter(sdkDryRun)
		ask := prompt.Confirm
		if sdkDryRun {
			ask = prompt.Always
		}

		sync, err := flutter.NewSynchronizer(r, w, ask, channel, mode)
		if err != nil {
			return err
		}
		if err := sync.Ensure(); err != nil {
			return err
		}

		profile, err := flutter.NewProfile(w)
		if err != nil {
			return err
		}
		if err := profile.Apply(sync.Root); err != nil {
			return err
		}

		printSDKStatus(sync)
		return nil
	},
}

func init() {
	sdkCmd.Flags().StringVar(&sdkChannel, "channel", "stable", "Flutter channel (stable|beta)")
	sdkCmd.Flags().StringVar(&sdkUpdate, "flutter-update", "reset", "How to update an existing checkout (reset|reclone|skip)")
	sdkCmd.Flags().BoolVar(&sdkDryRun, "dry-run", false, "Preview every action without executing it")
}

func printSDKStatus(sync *flutter.Synchronizer) {
	st := sync.Status()
	if !st.Exists {
		// Dry-run against an absent root ends up here.
		logger.Info("[INFO] No Flutter checkout at %s yet\n", st.Root)
		return
	}
	logger.Info("[INFO] Flutter SDK at %s (branch %s, revision %s, origin %s)\n",
		st.Root, st.Branch, st.Revision, st.Origin)
}
