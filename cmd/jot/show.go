package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/core"
)

var (
	showDate  string
	showMatch string
	showJSON  bool
)

var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"list"},
	Short:   "List notes",
	Long: `Show prints "<title> - <date>" for each note in insertion order.
--date keeps notes created within one day of YYYY-MM-DD; --match filters titles by glob.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts core.ShowOptions
		if showDate != "" {
			date, err := core.ParseDate(showDate)
			if err != nil {
				return err
			}
			opts.Date = &date
		}
		opts.Match = showMatch

		mgr, err := openManager(cmd.Context())
		if err != nil {
			return err
		}

		if !showJSON {
			return mgr.Show(cmd.OutOrStdout(), opts)
		}

		notes, err := mgr.List(opts)
		if err != nil {
			return err
		}
		records := make([]core.Record, 0, len(notes))
		for _, n := range notes {
			records = append(records, n.ToRecord())
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showDate, "date", "d", "", "Only notes within one day of this date (YYYY-MM-DD)")
	showCmd.Flags().StringVarP(&showMatch, "match", "m", "", "Only notes whose title matches this glob")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
