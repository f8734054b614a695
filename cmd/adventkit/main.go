// Command adventkit runs registered puzzle solutions against cached
// inputs. Solutions register themselves from init functions; link them
// into this binary with blank imports.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/arreto/adventkit/runner"
)

var (
	flagYear  int
	flagDay   int
	flagPart  int
	flagInput string
	flagDebug bool
)

func main() {
	root := &cobra.Command{
		Use:           "adventkit",
		Short:         "Run calendar puzzle solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := slog.LevelInfo
			if flagDebug {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")

	root.AddCommand(newRunCmd(), newListCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newRunCmd dispatches one puzzle part and prints its answer.
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one puzzle part against its cached input",
		RunE: func(*cobra.Command, []string) error {
			answer, err := runner.Run(flagYear, flagDay, flagPart, runner.DirSource{Root: flagInput})
			if err != nil {
				return err
			}
			fmt.Println(answer)

			return nil
		},
	}

	cmd.Flags().IntVar(&flagYear, "year", 0, "puzzle year")
	cmd.Flags().IntVar(&flagDay, "day", 0, "puzzle day")
	cmd.Flags().IntVar(&flagPart, "part", 1, "puzzle part (1 or 2)")
	cmd.Flags().StringVar(&flagInput, "input", "input", "root of the input cache (<root>/<year>/day<DD>.txt)")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("day")

	return cmd
}

// newListCmd enumerates every registered puzzle.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered puzzles",
		RunE: func(*cobra.Command, []string) error {
			ids := runner.Puzzles()
			if len(ids) == 0 {
				fmt.Println("no puzzles registered")

				return nil
			}
			for _, id := range ids {
				fmt.Println(id)
			}

			return nil
		},
	}
}
