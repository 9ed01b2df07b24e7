package practice

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vololibero/quizvl/internal/questions"
	"github.com/vololibero/quizvl/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "quizvl.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testBank(t *testing.T) *questions.Bank {
	t.Helper()
	b, err := questions.Default()
	require.NoError(t, err)
	return b
}

func newTestService(t *testing.T, opts ...Option) (*Service, *store.Store) {
	t.Helper()
	st := openTestStore(t)
	opts = append([]Option{WithRand(newRand(1)), WithEventRepo(st.EventRepo())}, opts...)
	return NewService(testBank(t), st.AnswerRepo(), opts...), st
}

func TestSubmitCorrectAndWrong(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	q, err := svc.Bank().ByID("1003")
	require.NoError(t, err)

	correct, err := svc.Submit(ctx, q, 0)
	require.NoError(t, err)
	assert.False(t, correct)

	errs, err := st.AnswerRepo().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", errs["1003"])

	correct, err = svc.Submit(ctx, q, q.CorrectAnswerIndex)
	require.NoError(t, err)
	assert.True(t, correct)

	errs, err = st.AnswerRepo().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", errs["1003"])

	_, err = svc.Submit(ctx, q, q.CorrectAnswerIndex)
	require.NoError(t, err)
	errs, err = st.AnswerRepo().Load(ctx)
	require.NoError(t, err)
	assert.NotContains(t, errs, "1003")
}

func TestSubmitRecordsEvents(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	exam := svc.Session(ModeExam)

	q, err := svc.Bank().ByID("5001")
	require.NoError(t, err)
	_, err = exam.Submit(ctx, q, q.CorrectAnswerIndex)
	require.NoError(t, err)

	recent, err := st.EventRepo().RecentAnswers(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "5001", recent[0].QuestionID)
	assert.Equal(t, 5, recent[0].Section)
	assert.Equal(t, string(ModeExam), recent[0].Mode)
	assert.Equal(t, exam.SessionID(), recent[0].SessionID)
	assert.NotEqual(t, svc.SessionID(), exam.SessionID())
	assert.True(t, recent[0].Correct)
}

func TestSubmitRejectsInvalidAnswer(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	q, err := svc.Bank().ByID("1001")
	require.NoError(t, err)

	for _, bad := range []int{-1, 3, 99} {
		_, err := svc.Submit(ctx, q, bad)
		assert.ErrorIs(t, err, ErrInvalidAnswer)
	}

	errs, err := st.AnswerRepo().Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestPickPrefersMissed(t *testing.T) {
	svc, st := newTestService(t, WithMissedProbability(1))
	ctx := context.Background()

	require.NoError(t, st.AnswerRepo().Save(ctx, store.ErrorMap{"9045": "2"}))
	for i := 0; i < 20; i++ {
		q, err := svc.Pick(ctx)
		require.NoError(t, err)
		assert.Equal(t, "9045", q.ID)
	}
}

func TestPickFromEmptyPool(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.PickFrom(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestMissedOrdering(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	require.NoError(t, st.AnswerRepo().Save(ctx, store.ErrorMap{
		"1001": "2",
		"2005": "6",
		"5001": "2",
		"0000": "9", // not in bank
	}))

	missed, err := svc.Missed(ctx)
	require.NoError(t, err)
	require.Len(t, missed, 3)
	assert.Equal(t, "2005", missed[0].Question.ID)
	assert.Equal(t, 6, missed[0].MissCount)
	assert.Equal(t, "1001", missed[1].Question.ID)
	assert.Equal(t, "5001", missed[2].Question.ID)

	bySection, err := svc.MissedBySection(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[questions.SectionNumber]int{1: 1, 2: 1, 5: 1}, bySection)
}

func TestShuffleKeepsElements(t *testing.T) {
	svc, _ := newTestService(t)
	qs := svc.Bank().BySection(questions.SectionFirstAid)
	shuffled := svc.Shuffle(qs)
	assert.ElementsMatch(t, qs, shuffled)
}

type failingAnswers struct{ store.AnswerRepo }

func (failingAnswers) Load(context.Context) (store.ErrorMap, error) {
	return nil, errors.New("disk on fire")
}

func TestSubmitPropagatesLoadError(t *testing.T) {
	svc := NewService(testBank(t), failingAnswers{})
	q, err := svc.Bank().ByID("1001")
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), q, 0)
	assert.ErrorContains(t, err, "disk on fire")

	_, err = svc.Pick(context.Background())
	assert.ErrorContains(t, err, "disk on fire")
}
