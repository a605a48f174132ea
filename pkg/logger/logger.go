// Package logger 建立整個服務共用的 zerolog 記錄器。
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New 依照設定的等級與格式建立記錄器
// 無法解析的等級會退回 info
func New(level, format string) zerolog.Logger {
	return NewWithWriter(os.Stdout, level, format)
}

// NewWithWriter 與 New 相同，但輸出到指定的 writer
func NewWithWriter(w io.Writer, level, format string) zerolog.Logger {
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
