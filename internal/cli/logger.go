package cli

import (
	"io"
	"log/slog"

	"github.com/benedict2310/deployseo/internal/config"
)

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	parsed, err := config.ParseLogLevel(level)
	if err != nil {
		return nil, err
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parsed})
	return slog.New(h), nil
}
