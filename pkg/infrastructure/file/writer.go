package file

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON v をJSONにしてアトミックに書き込む
func WriteJSON(path string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal json, path: %s, error: %w", path, err)
	}
	return WriteFileAtomic(path, b)
}

// WriteFileAtomic 一時ファイルに書き込んでから path へリネームする
// 読み手が書きかけのファイルを見ることはない。
func WriteFileAtomic(path string, b []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0644); err != nil {
		return fmt.Errorf("failed to write temp file, path: %s, error: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to rename temp file, from: %s, to: %s, error: %w", tmp, path, err)
	}
	return nil
}
