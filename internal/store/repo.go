package store

import (
	"context"
	"errors"
	"time"
)

// Keys under which state blobs are stored.
const (
	KeyAnswers  = "answers"
	KeySections = "sections"
	KeySettings = "settings"
)

var (
	// ErrCorrupt is returned when a stored blob is not a valid JSON object.
	ErrCorrupt = errors.New("stored state is corrupt")

	// ErrUnknownSetting is returned for setting keys other than the known flags.
	ErrUnknownSetting = errors.New("unknown setting")
)

// KV is a string key-value store.
type KV interface {
	// Get returns the value for key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// ErrorMap maps a question id to its string-encoded miss count.
type ErrorMap map[string]string

// AnswerRepo persists the error map.
type AnswerRepo interface {
	// Load returns the stored error map, or an empty map if none is stored.
	Load(ctx context.Context) (ErrorMap, error)

	// Save replaces the stored error map.
	Save(ctx context.Context, m ErrorMap) error

	// Reset stores an empty error map.
	Reset(ctx context.Context) error
}

// SectionRepo persists which sections have been completed.
type SectionRepo interface {
	IsCompleted(ctx context.Context, section string) (bool, error)
	Complete(ctx context.Context, section string) error

	// Completed returns the set of completed section keys.
	Completed(ctx context.Context) (map[string]bool, error)

	Reset(ctx context.Context) error
}

// SettingsRepo persists the user settings flags.
type SettingsRepo interface {
	// Load returns the stored settings, filling absent keys with defaults.
	Load(ctx context.Context) (Settings, error)

	// Set stores a single flag. Unknown keys return ErrUnknownSetting.
	Set(ctx context.Context, key string, value bool) error

	// Reset stores the default settings.
	Reset(ctx context.Context) error
}

// AnswerEventData captures a single answered question.
type AnswerEventData struct {
	SessionID  string
	Mode       string
	QuestionID string
	Section    int
	Chosen     int
	Correct    bool
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// SectionAccuracy aggregates answer events for one section.
type SectionAccuracy struct {
	Section  int
	Attempts int
	Correct  int
}

// Accuracy returns Correct/Attempts, or 0 when nothing was attempted.
func (a SectionAccuracy) Accuracy() float64 {
	if a.Attempts == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Attempts)
}

// EventRepo provides append and query access to the answer event log.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// SectionAccuracy returns per-section totals ordered by section.
	SectionAccuracy(ctx context.Context) ([]SectionAccuracy, error)

	// RecentAnswers returns the newest events first. limit <= 0 means no limit.
	RecentAnswers(ctx context.Context, limit int) ([]AnswerEventRecord, error)

	// Reset deletes every event.
	Reset(ctx context.Context) error
}
