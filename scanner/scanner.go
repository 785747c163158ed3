// Package scanner finds the files to lint under a directory.
package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"
)

type FileInfo struct {
	Path string
	Size int64
}

type Scanner struct {
	rootDir    string
	extensions []string
}

// New returns a scanner for rootDir. With no extensions every file matches.
func New(rootDir string, extensions ...string) *Scanner {
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Scan walks the root directory in lexical order and returns the matching files.
// Hidden directories such as .git are skipped.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.WalkDir(s.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != s.rootDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !s.IsTarget(path) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, FileInfo{
			Path: path,
			Size: info.Size(),
		})
		return nil
	})

	return files, err
}

// IsTarget reports whether path has one of the scanner's extensions.
func (s *Scanner) IsTarget(path string) bool {
	return HasExtension(path, s.extensions...)
}

// HasExtension reports whether path ends with one of extensions.
// An empty extension list matches every path.
func HasExtension(path string, extensions ...string) bool {
	if len(extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, targetExt := range extensions {
		if strings.EqualFold(ext, targetExt) {
			return true
		}
	}
	return false
}
