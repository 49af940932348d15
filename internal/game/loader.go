package game

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-tiles/internal/board"
)

// LoadFaces loads tile faces from a list of paths (files or directories).
// Each non-empty line is one face; lines starting with '#' are comments.
// Duplicates are dropped, keeping the first occurrence.
func LoadFaces(paths []string) ([]string, error) {
	var faces []string
	seen := make(map[string]bool)

	add := func(fs []string) {
		for _, f := range fs {
			if !seen[f] {
				seen[f] = true
				faces = append(faces, f)
			}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", path, err)
		}

		if info.IsDir() {
			files, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read dir %s: %w", path, err)
			}
			for _, entry := range files {
				if entry.IsDir() {
					continue
				}
				f, err := loadFile(filepath.Join(path, entry.Name()))
				if err != nil {
					return nil, err
				}
				add(f)
			}
		} else {
			f, err := loadFile(path)
			if err != nil {
				return nil, err
			}
			add(f)
		}
	}

	return faces, nil
}

// ValidateFaces checks that there are enough distinct faces for the largest
// board.
func ValidateFaces(faces []string) error {
	if len(faces) < board.MaxPairs {
		return fmt.Errorf("need at least %d distinct faces, got %d", board.MaxPairs, len(faces))
	}
	return nil
}

func loadFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var faces []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		faces = append(faces, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan file %s: %w", path, err)
	}

	return faces, nil
}
