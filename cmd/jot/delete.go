package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [title]",
	Short: "Delete every note with a title",
	Long:  `Delete removes all notes whose title matches exactly and rewrites the backing file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager(cmd.Context())
		if err != nil {
			return err
		}

		removed, err := mgr.Delete(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to delete notes: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Notes deleted: %d\n", removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
