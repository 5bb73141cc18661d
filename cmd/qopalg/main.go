package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// configureLogging routes zerolog to a file so log lines do not tear the
// alternate screen. Without QOPALG_DEBUG everything below warn is dropped.
func configureLogging() (*os.File, error) {
	level := zerolog.WarnLevel
	if os.Getenv("QOPALG_DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	f, err := os.OpenFile("qopalg.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}

func main() {
	logFile, err := configureLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logFile.Close()

	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
