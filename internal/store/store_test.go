package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "quizvl.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKVRoundTrip(t *testing.T) {
	kv := openTestStore(t).KV()
	ctx := context.Background()

	_, found, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, "k", "v1"))
	require.NoError(t, kv.Set(ctx, "k", "v2"))

	v, found, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v2", v)

	require.NoError(t, kv.Delete(ctx, "k"))
	require.NoError(t, kv.Delete(ctx, "k"))
	_, found, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizvl.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.AnswerRepo().Save(ctx, ErrorMap{"1001": "2"}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	m, err := s.AnswerRepo().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, ErrorMap{"1001": "2"}, m)
}

func TestAnswerRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnswerRepo()
	ctx := context.Background()

	m, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
	assert.NotNil(t, m)

	require.NoError(t, repo.Save(ctx, ErrorMap{"1001": "2", "2005": "1"}))
	raw, _, err := s.KV().Get(ctx, KeyAnswers)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1001":"2","2005":"1"}`, raw)

	require.NoError(t, repo.Reset(ctx))
	raw, found, err := s.KV().Get(ctx, KeyAnswers)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "{}", raw)
}

func TestAnswerRepoCorrupt(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.KV().Set(ctx, KeyAnswers, "{not json"))
	_, err := s.AnswerRepo().Load(ctx)
	assert.ErrorIs(t, err, ErrCorrupt)

	require.NoError(t, s.KV().Set(ctx, KeyAnswers, "null"))
	m, err := s.AnswerRepo().Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestSectionRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.SectionRepo()
	ctx := context.Background()

	done, err := repo.IsCompleted(ctx, "3")
	require.NoError(t, err)
	assert.False(t, done)

	require.NoError(t, repo.Complete(ctx, "3"))
	require.NoError(t, repo.Complete(ctx, "7"))

	done, err = repo.IsCompleted(ctx, "3")
	require.NoError(t, err)
	assert.True(t, done)

	all, err := repo.Completed(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"3": true, "7": true}, all)

	require.NoError(t, repo.Reset(ctx))
	all, err = repo.Completed(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSectionRepoOnlyTrueCounts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.KV().Set(ctx, KeySections, `{"1":"true","2":"false","3":"yes"}`))
	all, err := s.SectionRepo().Completed(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"1": true}, all)
}

func TestSettingsRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.SettingsRepo()
	ctx := context.Background()

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)
	assert.True(t, got.Bool(SettingParagliding))
	assert.False(t, got.Bool(SettingDelta))

	require.NoError(t, repo.Set(ctx, SettingDelta, true))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got.Bool(SettingDelta))
	assert.True(t, got.Bool(SettingParagliding))

	err = repo.Set(ctx, "motor", true)
	assert.ErrorIs(t, err, ErrUnknownSetting)

	require.NoError(t, repo.Reset(ctx))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), got)
}

func TestSettingsRepoFillsMissingKeys(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.KV().Set(ctx, KeySettings, `{"delta":"true"}`))
	got, err := s.SettingsRepo().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Settings{SettingParagliding: "true", SettingDelta: "true"}, got)
}

func TestEventRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []AnswerEventData{
		{SessionID: "s1", Mode: "quiz", QuestionID: "1001", Section: 1, Chosen: 1, Correct: true},
		{SessionID: "s1", Mode: "quiz", QuestionID: "1002", Section: 1, Chosen: 2, Correct: false},
		{SessionID: "s1", Mode: "exam", QuestionID: "5001", Section: 5, Chosen: 0, Correct: true},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendAnswer(ctx, e))
	}

	acc, err := repo.SectionAccuracy(ctx)
	require.NoError(t, err)
	require.Len(t, acc, 2)
	assert.Equal(t, SectionAccuracy{Section: 1, Attempts: 2, Correct: 1}, acc[0])
	assert.Equal(t, SectionAccuracy{Section: 5, Attempts: 1, Correct: 1}, acc[1])
	assert.InDelta(t, 0.5, acc[0].Accuracy(), 1e-9)

	recent, err := repo.RecentAnswers(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "5001", recent[0].QuestionID)
	assert.Equal(t, "exam", recent[0].Mode)
	assert.True(t, recent[0].Correct)
	assert.Equal(t, "1002", recent[1].QuestionID)
	assert.False(t, recent[1].Correct)
	assert.Greater(t, recent[0].Sequence, recent[1].Sequence)

	all, err := repo.RecentAnswers(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.Reset(ctx))
	all, err = repo.RecentAnswers(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSequenceIsMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		require.NoError(t, err)
		assert.Greater(t, n, prev)
		prev = n
	}
}

func TestSectionAccuracyZero(t *testing.T) {
	assert.Equal(t, 0.0, SectionAccuracy{}.Accuracy())
}
