package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [title] [message]",
	Short: "Add a note",
	Long:  `Add appends a note stamped with the current time and rewrites the backing file.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager(cmd.Context())
		if err != nil {
			return err
		}

		message := ""
		if len(args) == 2 {
			message = args[1]
		}

		note, err := mgr.Add(cmd.Context(), args[0], message)
		if err != nil {
			return fmt.Errorf("failed to add note: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note added: %s\n", note.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
