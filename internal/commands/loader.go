package commands

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/telemetry-codec/pkg/errors"
)

// Load reads a command set from a text file. Each non-blank line holds one
// short command, optionally followed by whitespace and a free-form comment.
// Lines starting with '#' are skipped.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeNotFound, "open command file", err)
	}
	defer f.Close()

	set, err := Parse(f)
	if err != nil {
		return nil, err
	}
	set.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return set, nil
}

// Parse reads a command set from a reader using the same line format as Load.
// A set with no commands at all is rejected.
func Parse(r io.Reader) (*Set, error) {
	set := &Set{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		short := fields[0]
		comment := strings.TrimSpace(strings.TrimPrefix(line, short))
		set.Entries = append(set.Entries, Entry{Short: short, Comment: comment})
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidInput, "read command file", err)
	}
	if len(set.Entries) == 0 {
		return nil, apperrors.New(apperrors.CodeEmptyFile, "command file contains no commands")
	}
	return set, nil
}
