package helpers

import (
	"context"
	"path/filepath"
	"strings"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// FileTypeByName определяет тег типа файла по расширению имени
func FileTypeByName(fileName string) string {
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	return strings.ToLower(ext)
}
