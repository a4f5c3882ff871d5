package log

import (
	"fmt"
	"os"
)

// Color ANSI エスケープの色番号
type Color int

const (
	Red Color = 31 + iota
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Enabled NO_COLOR が設定されていれば色を付けない
var Enabled = os.Getenv("NO_COLOR") == ""

// Paint 色付きで整形
func (c Color) Paint(format string, a ...interface{}) string {
	s := fmt.Sprintf(format, a...)
	if !Enabled {
		return s
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", int(c), s)
}
