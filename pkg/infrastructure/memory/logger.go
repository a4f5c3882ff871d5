package memory

import (
	"log"
	"strings"

	color "mining-profit/pkg/usecase/log"
)

const (
	Debug = iota
	Info
	Warn
	Error
)

// Logger レベル付きのログ出力
type Logger struct {
	Level int
}

// ParseLevel 文字列からログレベルへ変換
func ParseLevel(s string) int {
	switch strings.ToLower(s) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	if l.Level > Debug {
		return
	}
	log.Printf(color.Cyan.Paint("[DEBUG]")+" "+format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	if l.Level > Info {
		return
	}
	log.Printf("[INFO] "+format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	if l.Level > Warn {
		return
	}
	log.Printf(color.Yellow.Paint("[WARN]")+" "+format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	if l.Level > Error {
		return
	}
	log.Printf(color.Red.Paint("[ERROR]")+" "+format, v...)
}
