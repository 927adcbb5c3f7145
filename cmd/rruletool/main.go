// Command rruletool is a developer utility for working with recurrence
// rule strings: it checks and normalizes rules, and expands them into
// occurrence dates.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cyp0633/librrule/expand"
	"github.com/cyp0633/librrule/rrule"
)

const dateLayout = "2006-01-02"

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Verbose bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "rruletool",
		Short: "Inspect and expand recurrence rules",
		Long: `rruletool parses RFC 5545 recurrence rule strings, prints their
canonical form, and expands them into concrete occurrence dates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(newNormalizeCommand())
	cmd.AddCommand(newExpandCommand())

	return cmd
}

func newNormalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <rule>",
		Short: "Parse a rule and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rrule.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.String())
			return nil
		},
	}
}

type expandOptions struct {
	Start string
	Until string
	Limit int
}

func newExpandCommand() *cobra.Command {
	opts := &expandOptions{}

	cmd := &cobra.Command{
		Use:   "expand <rule>",
		Short: "Expand a rule into occurrence dates",
		Long: `Expand parses a rule and prints its occurrence dates, one per line,
starting from --start and stopping at --until, --limit, or the rule's
own termination, whichever comes first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Start, "start", "", "start date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&opts.Until, "until", "", "stop after this date, YYYY-MM-DD")
	cmd.Flags().IntVar(&opts.Limit, "limit", expand.DefaultLimit, "maximum number of occurrences")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func runExpand(opts *expandOptions, ruleText string, cmd *cobra.Command) error {
	r, err := rrule.Parse(ruleText)
	if err != nil {
		return err
	}

	start, err := time.Parse(dateLayout, opts.Start)
	if err != nil {
		return fmt.Errorf("invalid --start %q: %w", opts.Start, err)
	}

	genOpts := expand.Options{Limit: opts.Limit}
	if opts.Until != "" {
		until, err := time.Parse(dateLayout, opts.Until)
		if err != nil {
			return fmt.Errorf("invalid --until %q: %w", opts.Until, err)
		}
		genOpts.Until = &until
	}

	slog.Debug("expanding rule", "rule", r.String(), "start", opts.Start, "limit", opts.Limit)

	occurrences, err := expand.Occurrences(r, start, genOpts)
	if err != nil {
		return err
	}
	for _, occ := range occurrences {
		fmt.Fprintln(cmd.OutOrStdout(), occ.Format(dateLayout))
	}
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rruletool:", err)
		os.Exit(1)
	}
}
