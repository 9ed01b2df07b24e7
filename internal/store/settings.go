package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Setting keys.
const (
	SettingParagliding = "paragliding"
	SettingDelta       = "delta"
)

// Settings holds string-encoded boolean flags keyed by setting name.
type Settings map[string]string

// DefaultSettings returns the settings used when nothing is stored.
func DefaultSettings() Settings {
	return Settings{
		SettingParagliding: "true",
		SettingDelta:       "false",
	}
}

// SettingKeys returns the known setting keys in display order.
func SettingKeys() []string {
	return []string{SettingParagliding, SettingDelta}
}

// IsSettingKey reports whether key is a known setting.
func IsSettingKey(key string) bool {
	_, ok := DefaultSettings()[key]
	return ok
}

// Bool returns the flag value for key. Anything other than "true" is false.
func (s Settings) Bool(key string) bool {
	return s[key] == "true"
}

type settingsRepo struct {
	kv KV
}

func (r *settingsRepo) Load(ctx context.Context) (Settings, error) {
	s := Settings{}
	found, err := loadObject(ctx, r.kv, KeySettings, &s)
	if err != nil {
		return nil, err
	}
	if !found || s == nil {
		return DefaultSettings(), nil
	}
	for k, v := range DefaultSettings() {
		if _, ok := s[k]; !ok {
			s[k] = v
		}
	}
	return s, nil
}

func (r *settingsRepo) Set(ctx context.Context, key string, value bool) error {
	if !IsSettingKey(key) {
		return fmt.Errorf("%q: %w", key, ErrUnknownSetting)
	}
	s, err := r.Load(ctx)
	if err != nil {
		return err
	}
	s[key] = strconv.FormatBool(value)
	return saveObject(ctx, r.kv, KeySettings, s)
}

func (r *settingsRepo) Reset(ctx context.Context) error {
	return saveObject(ctx, r.kv, KeySettings, DefaultSettings())
}

var settingLabels = map[string]string{
	SettingParagliding: "Parapendio",
	SettingDelta:       "Deltaplano",
}

// SettingLabel returns the display name of a setting key.
func SettingLabel(key string) string {
	if l, ok := settingLabels[key]; ok {
		return l
	}
	return key
}

// Discipline returns the labels of the enabled flags joined for display,
// or "" when none is enabled.
func (s Settings) Discipline() string {
	var on []string
	for _, k := range SettingKeys() {
		if s.Bool(k) {
			on = append(on, SettingLabel(k))
		}
	}
	return strings.Join(on, " · ")
}
