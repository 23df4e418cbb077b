package logging

import (
	"bytes"
	"errors"
	"slices"

	"github.com/rs/zerolog"
)

const (
	// Silent produces no log output.
	Silent Level = iota

	// Error reports only failures.
	Error

	// Info is Error plus informational messages.
	Info

	// Debug is the most verbose level, including per-evaluation
	// detail.
	Debug
)

// Level determines the severity threshold of log messages.
type Level int8

var levels = []levelDesc{
	{"silent", zerolog.Disabled},
	{"error", zerolog.ErrorLevel},
	{"info", zerolog.InfoLevel},
	{"debug", zerolog.DebugLevel},
}

type levelDesc struct {
	text  string
	level zerolog.Level
}

func (l Level) String() string {
	text, err := l.MarshalText()
	if err != nil {
		return ""
	}
	return string(text)
}

func (l Level) MarshalText() ([]byte, error) {
	if l < Silent || l > Debug {
		return nil, errors.New("unknown log level")
	}
	return []byte(levels[l].text), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	textStr := string(bytes.ToLower(text))
	i := slices.IndexFunc(levels, func(d levelDesc) bool {
		return d.text == textStr
	})
	if i == -1 {
		return errors.New("unknown log level")
	}

	*l = Level(i)
	return nil
}

func makeZerologLevel(l Level) zerolog.Level {
	if l < Silent || l > Debug {
		return zerolog.Disabled
	}
	return levels[l].level
}
