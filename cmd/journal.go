package cmd

import (
	"errors"
	"fmt"

	sqlitejournal "github.com/bnema/netrun/internal/adapters/journal/sqlite"
	"github.com/bnema/netrun/internal/domain"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

func newJournalCmd(app *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "List recently finished actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.settings.JournalPath == "" {
				return errors.New("the action journal is disabled (journal.path is empty)")
			}

			j, err := sqlitejournal.Open(app.settings.JournalPath)
			if err != nil {
				return fmt.Errorf("open action journal: %w", err)
			}
			defer j.Close()

			entries, err := j.Entries(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("read action journal: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, err := fmt.Fprintln(out, "No actions recorded yet.")
				return err
			}

			tbl := table.New("Finished", "Session", "Action", "Host", "Result", "Money", "Exp").WithWriter(out)
			for _, e := range entries {
				tbl.AddRow(
					e.FinishedAt.Local().Format("2006-01-02 15:04:05"),
					shortSession(e.Session),
					e.Kind.String(),
					e.Hostname,
					outcomeLabel(e.ActionOutcome),
					domain.FormatMoney(e.MoneyGained),
					domain.FormatExp(e.ExpGained),
				)
			}
			tbl.Print()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")
	return cmd
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func outcomeLabel(o domain.ActionOutcome) string {
	switch {
	case o.Cancelled:
		return "cancelled"
	case o.Rejected:
		return "rejected"
	case o.Success:
		return "success"
	default:
		return "failed"
	}
}
