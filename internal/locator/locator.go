package locator

import (
	"os"
	"path/filepath"
	"strings"
)

// VideoExtensions are the container formats the renderer can produce.
var VideoExtensions = []string{".mp4", ".webm", ".mov"}

// PartialMovieDir holds the per-animation chunks manim stitches into the
// final video. Its files are never a render result.
const PartialMovieDir = "partial_movie_files"

// Find returns the first file under root whose extension is a known video
// container. Each directory's files are checked, in lexical order, before any
// of its subdirectories is entered. found is false, with a nil error, when the
// tree holds no video. Unreadable subdirectories are skipped.
func Find(root string) (path string, found bool, err error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", false, err
	}

	path, found = search(root, entries)
	return path, found, nil
}

func search(dir string, entries []os.DirEntry) (string, bool) {
	var subdirs []string

	for _, e := range entries {
		if e.IsDir() {
			if e.Name() != PartialMovieDir {
				subdirs = append(subdirs, e.Name())
			}
			continue
		}
		if IsVideo(e.Name()) {
			return filepath.Join(dir, e.Name()), true
		}
	}

	for _, name := range subdirs {
		sub := filepath.Join(dir, name)
		children, err := os.ReadDir(sub)
		if err != nil {
			continue
		}
		if p, ok := search(sub, children); ok {
			return p, true
		}
	}

	return "", false
}

func IsVideo(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, v := range VideoExtensions {
		if ext == v {
			return true
		}
	}
	return false
}
