package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [title] [message]",
	Short: "Replace the message of a note",
	Long: `Edit replaces the message of the first note with the given title.
Later notes sharing the title are left untouched.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager(cmd.Context())
		if err != nil {
			return err
		}

		found, err := mgr.Edit(cmd.Context(), args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to edit note: %w", err)
		}

		if !found {
			fmt.Fprintf(cmd.OutOrStdout(), "No note titled %q\n", args[0])
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Note edited: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
