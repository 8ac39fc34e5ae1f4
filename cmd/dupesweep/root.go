package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var flags sweepFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "dupesweep [base-path]",
		Short: "Find and remove automatically renamed media duplicates",
		Long: `dupesweep scans a directory for media files that were copied with an
automatic rename such as "cat (1).jpg" next to "cat.jpg" and reports them.
Nothing is removed unless --run is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, ctx, &flags, args)
		},
	}

	rootCmd.SetGlobalNormalizationFunc(dashedFlagName)
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	bindSweepFlags(rootCmd.Flags(), &flags)

	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newHistoryCommand(ctx))

	return rootCmd
}
