package main

import (
	"encoding/json"
	"fmt"
	"io"

	"mining-profit/pkg/domain/model"
	"mining-profit/pkg/infrastructure/file"
)

// emit レポートを1回の書き込みで出力する
// output が空なら w へ、そうでなければ output へアトミックに書く。
func emit(w io.Writer, output string, report *model.Report) error {
	b, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if output != "" {
		return file.WriteFileAtomic(output, b)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
