package render

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	importLine     = "from manim import"
	importPreamble = "from manim import *\n\n"
)

// Only classes deriving directly from Scene are recognised, and only the
// first one in source order is used.
var sceneClassPattern = regexp.MustCompile(`class\s+(\w+)\s*\(\s*Scene\s*\)`)

// ExtractSceneName returns the first class declared as a direct Scene subclass.
func ExtractSceneName(script string) (string, bool) {
	m := sceneClassPattern.FindStringSubmatch(script)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// PrepareScript adds the manim import when the script does not reference it.
func PrepareScript(script string) string {
	if strings.Contains(script, importLine) {
		return script
	}
	return importPreamble + script
}

// WriteScript writes the prepared script to path, creating parent directories.
func WriteScript(path, script string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create script directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(PrepareScript(script)), 0o644); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}
	return nil
}
