package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vololibero/quizvl/internal/questions"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show miss counts, completed sections and accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx := cmd.Context()
		missed, err := rt.deps.Practice.Missed(ctx)
		if err != nil {
			return corruptHint(err, "answers")
		}
		completed, err := rt.deps.Sections.Completed(ctx)
		if err != nil {
			return corruptHint(err, "sections")
		}
		accuracy, err := rt.deps.Events.SectionAccuracy(ctx)
		if err != nil {
			return fmt.Errorf("load accuracy: %w", err)
		}
		attempts := make(map[int][2]int, len(accuracy))
		for _, a := range accuracy {
			attempts[a.Section] = [2]int{a.Attempts, a.Correct}
		}
		missedBySection := make(map[questions.SectionNumber]int)
		for _, m := range missed {
			missedBySection[m.Question.SectionNumber()]++
		}

		out := cmd.OutOrStdout()
		bank := rt.deps.Bank()

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SECTION\tDONE\tQUESTIONS\tTO REVIEW\tANSWERED\tACCURACY")
		for _, n := range bank.Sections() {
			done := ""
			if completed[n.Key()] {
				done = "yes"
			}
			acc := "-"
			a := attempts[int(n)]
			if a[0] > 0 {
				acc = fmt.Sprintf("%.0f%%", float64(a[1])/float64(a[0])*100)
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
				n, done, len(bank.BySection(n)), missedBySection[n], a[0], acc)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(out, "\n%d of %d questions to review\n", len(missed), bank.Len())
		if len(missed) == 0 {
			return nil
		}
		if limit > 0 && len(missed) > limit {
			missed = missed[:limit]
		}
		fmt.Fprintln(out)
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tMISSES\tQUESTION")
		for _, m := range missed {
			fmt.Fprintf(w, "%s\t%d\t%s\n", m.Question.ID, m.MissCount, truncate(m.Question.Text, 70))
		}
		return w.Flush()
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of most-missed questions to list (0 for all)")
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
