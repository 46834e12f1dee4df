package main

import (
	"encoding/json"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print manager and storage state as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager(cmd.Context())
		if err != nil {
			return err
		}

		state := map[string]any{
			mgr.ComponentType(): mgr.State(),
		}
		if comp, ok := mgr.Store().(interface {
			introspection.Introspectable
			introspection.Component
		}); ok {
			state[comp.ComponentType()] = comp.State()
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(state)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
