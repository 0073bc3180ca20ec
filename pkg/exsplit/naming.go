package exsplit

import (
	"fmt"
	"path/filepath"
	"strings"
)

// supportedExts lists the workbook extensions that can be read and written.
var supportedExts = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// IsSupported reports whether path has a supported workbook extension.
func IsSupported(path string) bool {
	return supportedExts[strings.ToLower(filepath.Ext(path))]
}

// ChunkPath returns the path of output file seq for source.
// Given "data/report.xlsx", seq 2 and an empty dir it returns
// "data/report_2.xlsx".
func ChunkPath(source, dir string, seq int) string {
	base := filepath.Base(source)
	ext := filepath.Ext(base)
	name := fmt.Sprintf("%s_%d%s", strings.TrimSuffix(base, ext), seq, ext)
	if dir == "" {
		dir = filepath.Dir(source)
	}
	return filepath.Join(dir, name)
}
