package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vololibero/quizvl/internal/screen"
	"github.com/vololibero/quizvl/internal/store"
)

// execute runs the root command with args against the database in dir and
// returns its output.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("QUIZVL_LOG_FILE", filepath.Join(dir, "quizvl.log"))
	t.Setenv("QUIZVL_DB", "")
	t.Setenv("QUIZVL_BANK", "")

	// Flags keep their values between executions of the package-level commands.
	require.NoError(t, rootCmd.PersistentFlags().Set("bank", ""))
	require.NoError(t, questionsCmd.Flags().Set("search", ""))
	require.NoError(t, statsCmd.Flags().Set("limit", "10"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--db", filepath.Join(dir, "quizvl.db")))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "quizvl (devel)\n", out)
}

func TestSettingsCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "settings")
	require.NoError(t, err)
	assert.Equal(t, "paragliding=true\ndelta=false\n", out)

	out, err = execute(t, dir, "settings", "delta", "true")
	require.NoError(t, err)
	assert.Equal(t, "delta=true\n", out)

	out, err = execute(t, dir, "settings", "delta")
	require.NoError(t, err)
	assert.Equal(t, "delta=true\n", out)

	_, err = execute(t, dir, "settings", "speed")
	assert.ErrorIs(t, err, store.ErrUnknownSetting)

	_, err = execute(t, dir, "settings", "delta", "maybe")
	assert.Error(t, err)
}

func TestQuestionsCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, dir, "questions", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "8001  ")
	assert.Contains(t, out, "\n14 questions\n")
	assert.NotContains(t, out, "1003  ")

	_, err = execute(t, dir, "questions", "10")
	assert.Error(t, err)

	out, err = execute(t, dir, "questions", "show", "#1003")
	require.NoError(t, err)
	assert.Contains(t, out, "* 3) 16 anni.")
}

func TestQuestionsShowUnknown(t *testing.T) {
	_, err := execute(t, t.TempDir(), "questions", "show", "9999")
	assert.ErrorContains(t, err, "not found")
}

func TestStatsAndReset(t *testing.T) {
	dir := t.TempDir()

	st, err := store.Open(filepath.Join(dir, "quizvl.db"))
	require.NoError(t, err)
	ctx := t.Context()
	require.NoError(t, st.AnswerRepo().Save(ctx, store.ErrorMap{"1003": "4", "8001": "2"}))
	require.NoError(t, st.SectionRepo().Complete(ctx, "8"))
	require.NoError(t, st.Close())

	out, err := execute(t, dir, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "2 of 445 questions to review")
	lines := strings.Split(out, "\n")
	var idLines []string
	for _, l := range lines {
		if strings.HasPrefix(l, "1003") || strings.HasPrefix(l, "8001") {
			idLines = append(idLines, l)
		}
	}
	require.Len(t, idLines, 2)
	assert.True(t, strings.HasPrefix(idLines[0], "1003"), "most missed first")

	out, err = execute(t, dir, "reset", "answers")
	require.NoError(t, err)
	assert.Equal(t, "Reset answers.\n", out)

	out, err = execute(t, dir, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "0 of 445 questions to review")

	_, err = execute(t, dir, "reset", "everything")
	assert.Error(t, err)
}

func TestCorruptAnswersHint(t *testing.T) {
	dir := t.TempDir()

	st, err := store.Open(filepath.Join(dir, "quizvl.db"))
	require.NoError(t, err)
	require.NoError(t, st.KV().Set(t.Context(), store.KeyAnswers, "{not json"))
	require.NoError(t, st.Close())

	_, err = execute(t, dir, "stats")
	require.ErrorIs(t, err, store.ErrCorrupt)
	assert.Contains(t, err.Error(), "quizvl reset answers")

	_, err = execute(t, dir, "reset", "answers")
	require.NoError(t, err)
	_, err = execute(t, dir, "stats")
	assert.NoError(t, err)
}

func TestAlternativeBank(t *testing.T) {
	dir := t.TempDir()
	bank := filepath.Join(dir, "bank.json")
	require.NoError(t, os.WriteFile(bank, []byte(`[
		{"id":"2001","section":"AERODINAMICA","text":"Che cos'è la portanza?","answers":["una forza","un vento","un materiale"],"correct_answer_index":0}
	]`), 0o644))

	out, err := execute(t, dir, "questions", "--bank", bank)
	require.NoError(t, err)
	assert.Contains(t, out, "\n1 questions\n")

	require.NoError(t, os.WriteFile(bank, []byte(`[{"id":"x"}]`), 0o644))
	_, err = execute(t, dir, "questions", "--bank", bank)
	assert.Error(t, err)
}

func TestResolveDBPath(t *testing.T) {
	tests := []struct {
		name string
		flag string
		env  string
		xdg  string
		want func(home, xdg, dir string) string
	}{
		{
			name: "home fallback",
			want: func(home, _, _ string) string {
				return filepath.Join(home, ".local", "share", "quizvl", "quizvl.db")
			},
		},
		{
			name: "xdg data home",
			xdg:  "xdg",
			want: func(_, xdg, _ string) string { return filepath.Join(xdg, "quizvl", "quizvl.db") },
		},
		{
			name: "env over xdg",
			env:  "env/e.db",
			xdg:  "xdg",
			want: func(_, _, dir string) string { return filepath.Join(dir, "env", "e.db") },
		},
		{
			name: "flag over env",
			flag: "flag/f.db",
			env:  "env/e.db",
			xdg:  "xdg",
			want: func(_, _, dir string) string { return filepath.Join(dir, "flag", "f.db") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			home := filepath.Join(dir, "home")
			t.Setenv("HOME", home)

			xdg := ""
			if tt.xdg != "" {
				xdg = filepath.Join(dir, tt.xdg)
			}
			t.Setenv("XDG_DATA_HOME", xdg)

			env := ""
			if tt.env != "" {
				env = filepath.Join(dir, tt.env)
			}

			cmd := &cobra.Command{}
			cmd.Flags().String("db", "", "")
			if tt.flag != "" {
				require.NoError(t, cmd.Flags().Set("db", filepath.Join(dir, tt.flag)))
			}

			got, err := resolveDBPath(cmd, env)
			require.NoError(t, err)
			assert.Equal(t, tt.want(home, xdg, dir), got)
			assert.DirExists(t, filepath.Dir(got))
		})
	}
}

func TestCheckStateReportsEachKey(t *testing.T) {
	for _, key := range []string{store.KeyAnswers, store.KeySections, store.KeySettings} {
		t.Run(key, func(t *testing.T) {
			st, err := store.Open(filepath.Join(t.TempDir(), "quizvl.db"))
			require.NoError(t, err)
			t.Cleanup(func() { st.Close() })

			deps := &screen.Deps{
				Answers:  st.AnswerRepo(),
				Sections: st.SectionRepo(),
				Settings: st.SettingsRepo(),
			}
			require.NoError(t, checkState(t.Context(), deps))

			require.NoError(t, st.KV().Set(t.Context(), key, "{not json"))
			err = checkState(t.Context(), deps)
			require.ErrorIs(t, err, store.ErrCorrupt)
			assert.Contains(t, err.Error(), "quizvl reset "+key)
		})
	}
}
