package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vololibero/quizvl/internal/questions"
)

var questionsCmd = &cobra.Command{
	Use:   "questions [section]",
	Short: "List the question bank, optionally one section",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")

		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		bank := rt.deps.Bank()
		qs := bank.All()
		if search != "" {
			qs = bank.Search(search)
		}
		if len(args) == 1 {
			n, err := questions.ParseSection(args[0])
			if err != nil {
				return fmt.Errorf("section %q: %w (want 1-%d)", args[0], err, questions.SectionCount)
			}
			var filtered []questions.Question
			for _, q := range qs {
				if q.SectionNumber() == n {
					filtered = append(filtered, q)
				}
			}
			qs = filtered
		}

		out := cmd.OutOrStdout()
		for _, q := range qs {
			fmt.Fprintf(out, "%s  %s\n", q.ID, q.Text)
		}
		fmt.Fprintf(out, "\n%d questions\n", len(qs))
		return nil
	},
}

var questionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a question with its answers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		id := strings.TrimPrefix(args[0], "#")
		q, err := rt.deps.Bank().ByID(id)
		if errors.Is(err, questions.ErrQuestionNotFound) {
			return fmt.Errorf("question %s not found", id)
		}
		if err != nil {
			return err
		}

		errs, err := rt.deps.Answers.Load(cmd.Context())
		if err != nil {
			return corruptHint(err, "answers")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "#%s  %s\n\n%s\n\n", q.ID, q.SectionNumber(), q.Text)
		for i, a := range q.Answers {
			mark := " "
			if i == q.CorrectAnswerIndex {
				mark = "*"
			}
			fmt.Fprintf(out, "%s %d) %s\n", mark, i+1, a)
		}
		if c := errs[q.ID]; c != "" {
			fmt.Fprintf(out, "\nmiss count: %s\n", c)
		}
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("search", "", "Only list questions whose text or answers contain this term")
	questionsCmd.AddCommand(questionsShowCmd)
}
