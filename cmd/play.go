package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vololibero/quizvl/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the quiz straight away",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.StartQuiz)
	},
}

var examCmd = &cobra.Command{
	Use:   "exam",
	Short: "Start a simulated exam",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.StartExam)
	},
}
