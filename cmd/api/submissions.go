package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"betagym/internal/domain/contact"
)

var submissionsCmd = &cobra.Command{
	Use:   "submissions",
	Short: "Print stored contact submissions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer a.close()

		svc := contact.NewService(contact.NewRepository(a.db))
		items, total, err := svc.List(cmd.Context(), limit, offset)
		if err != nil {
			return fmt.Errorf("list submissions: %w", err)
		}

		views := make([]contact.SubmissionView, 0, len(items))
		for i := range items {
			views = append(views, items[i].View())
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"total": total,
			"items": views,
		})
	},
}

func init() {
	rootCmd.AddCommand(submissionsCmd)
	submissionsCmd.Flags().Int("limit", 50, "maximum number of submissions to print")
	submissionsCmd.Flags().Int("offset", 0, "number of submissions to skip")
}
