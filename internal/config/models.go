package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

type Config struct {
	DBPath   string `env:"QUIZVL_DB"`
	BankPath string `env:"QUIZVL_BANK"`

	Log  LogConfig  `envPrefix:"QUIZVL_LOG_"`
	Quiz QuizConfig `envPrefix:"QUIZVL_"`
}

func (c Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Quiz.Validate(); err != nil {
		return err
	}
	return nil
}

type LogConfig struct {
	Level string `env:"LEVEL" envDefault:"info"`
	File  string `env:"FILE"`
}

// SlogLevel maps Level to a slog.Level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("QUIZVL_LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

func (c LogConfig) Validate() error {
	_, err := c.SlogLevel()
	return err
}

type QuizConfig struct {
	// MissedProbability is the chance of drawing from previously missed questions.
	MissedProbability float64 `env:"MISSED_PROBABILITY" envDefault:"0.2"`

	ExamQuestions int `env:"EXAM_QUESTIONS" envDefault:"30"`
	ExamMaxErrors int `env:"EXAM_MAX_ERRORS" envDefault:"3"`
}

func (c QuizConfig) Validate() error {
	if c.MissedProbability < 0 || c.MissedProbability > 1 {
		return errors.New("QUIZVL_MISSED_PROBABILITY must be between 0 and 1")
	}
	if c.ExamQuestions <= 0 {
		return errors.New("QUIZVL_EXAM_QUESTIONS must be positive")
	}
	if c.ExamMaxErrors < 0 {
		return errors.New("QUIZVL_EXAM_MAX_ERRORS must not be negative")
	}
	return nil
}
