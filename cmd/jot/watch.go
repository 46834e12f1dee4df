package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print notes again whenever the backing file changes",
	Long: `Watch prints the current notes and reprints them each time another
process rewrites the backing file. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		mgr, err := openManager(ctx)
		if err != nil {
			return err
		}

		w, ok := mgr.Store().(core.Watchable)
		if !ok {
			return errors.New("store does not support watching")
		}

		events, err := w.Watch(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := mgr.Show(out, core.ShowOptions{}); err != nil {
			return err
		}

		for e := range events {
			slog.Debug("backing file changed", "event", e.String())
			if err := mgr.Reload(ctx); err != nil {
				if errors.Is(err, context.Canceled) {
					break
				}
				// A writer may be mid-way; keep watching.
				slog.Warn("reload failed", "error", err)
				continue
			}
			fmt.Fprintf(out, "--- %s (%d notes)\n", e.Type, mgr.Len())
			if err := mgr.Show(out, core.ShowOptions{}); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
