package cmd

import (
	"fmt"

	"github.com/KaramelBytes/postkit/internal/collect"
	"github.com/KaramelBytes/postkit/internal/utils"
	"github.com/spf13/cobra"
)

var (
	exOut            string
	exKeepGoing      bool
	exWorkers        int
	exUpdatedSeconds uint32
)

var postCmd = &cobra.Command{
	Use:   "post <files...>",
	Short: "Extract dated posts (YYYY-M-D-slug.md) as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := collect.ExpandPaths(args)
		if err != nil {
			return err
		}
		res := collect.Posts(cmd.Context(), files, cfg, batchOptions())
		if cmd.Flags().Changed("updated-seconds") {
			for _, p := range res.Records {
				if err := p.SetUpdated(exUpdatedSeconds); err != nil {
					return fmt.Errorf("%s: %w", p.URL, err)
				}
			}
		}
		return emit(cmd, res.Records, res.Err())
	},
}

var pageCmd = &cobra.Command{
	Use:   "page <files...>",
	Short: "Extract static pages (layout aboutme) as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := collect.ExpandPaths(args)
		if err != nil {
			return err
		}
		res := collect.Pages(cmd.Context(), files, batchOptions())
		return emit(cmd, res.Records, res.Err())
	},
}

func batchOptions() collect.Options {
	workers := exWorkers
	if workers <= 0 && cfg != nil {
		workers = cfg.Workers
	}
	return collect.Options{Workers: workers, Logger: logger}
}

// emit writes records as JSON to --out or stdout. Failures abort unless
// --keep-going is set, in which case they have already been logged.
func emit[T any](cmd *cobra.Command, records []T, failures error) error {
	if failures != nil && !exKeepGoing {
		return failures
	}
	if records == nil {
		records = []T{}
	}
	b, err := utils.PrettyJSON(records)
	if err != nil {
		return err
	}
	if exOut != "" {
		if err := utils.SafeWriteFile(exOut, append(b, '\n')); err != nil {
			return err
		}
		logger.Info().Str("out", exOut).Int("records", len(records)).Msg("wrote records")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func init() {
	for _, c := range []*cobra.Command{postCmd, pageCmd} {
		rootCmd.AddCommand(c)
		c.Flags().StringVarP(&exOut, "out", "o", "", "write JSON to this file instead of stdout")
		c.Flags().BoolVar(&exKeepGoing, "keep-going", false, "emit the records that succeeded even if some files fail")
		c.Flags().IntVar(&exWorkers, "workers", 0, "concurrent extractions (default from config)")
	}
	postCmd.Flags().Uint32Var(&exUpdatedSeconds, "updated-seconds", 0, "set each post's updated time to midnight plus this many seconds")
}
