package pattern

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matchnotes/matchnotes-go/pkg/matchnotes/event"
)

const (
	// MaxPatternFileSize is the maximum allowed size for a pattern file (1MB).
	MaxPatternFileSize = 1 * 1024 * 1024

	// MaxPatternLength is the maximum allowed length for a regex pattern
	// (512 bytes). This helps mitigate ReDoS via excessively complex patterns.
	MaxPatternLength = 512

	// MaxPatternCount is the maximum number of patterns allowed in a file.
	MaxPatternCount = 1000

	// SupportedVersion is the currently supported pattern file format version.
	SupportedVersion = 1
)

// sanitizePathError removes the path from os.PathError so error messages
// don't expose file system paths to users.
func sanitizePathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%s: %w", pathErr.Op, pathErr.Err)
	}
	return err
}

// Load reads and parses a pattern file from the given path.
// Returns an error if the file cannot be read, is too large, or fails
// validation. Non-regular files (FIFO, device, socket) are rejected.
func Load(path string) (*PatternFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pattern file: %w", sanitizePathError(err))
	}
	defer f.Close()

	// Stat the file descriptor, not the path, to avoid TOCTOU.
	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat pattern file: %w", sanitizePathError(err))
	}
	if !info.Mode().IsRegular() {
		return nil, errors.New("pattern file must be a regular file (not FIFO, device, or special file)")
	}
	if info.Size() == 0 {
		return nil, errors.New("pattern file is empty")
	}
	if info.Size() > MaxPatternFileSize {
		return nil, fmt.Errorf("pattern file too large: %d bytes (max %d)", info.Size(), MaxPatternFileSize)
	}

	data, err := io.ReadAll(io.LimitReader(f, MaxPatternFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read pattern file: %w", sanitizePathError(err))
	}
	if len(data) > MaxPatternFileSize {
		return nil, fmt.Errorf("pattern file too large: exceeds %d bytes", MaxPatternFileSize)
	}

	return Parse(data)
}

// Parse parses pattern file content and validates it.
func Parse(data []byte) (*PatternFile, error) {
	var pf PatternFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse pattern file: %w", err)
	}
	if err := validate(&pf); err != nil {
		return nil, err
	}
	return &pf, nil
}

func validate(pf *PatternFile) error {
	if pf.Version != SupportedVersion {
		return &ValidationError{
			Field:   "version",
			Message: fmt.Sprintf("unsupported version %d (supported: %d)", pf.Version, SupportedVersion),
		}
	}
	if len(pf.Patterns) == 0 {
		return &ValidationError{Field: "patterns", Message: "at least one pattern is required"}
	}
	if len(pf.Patterns) > MaxPatternCount {
		return &ValidationError{
			Field:   "patterns",
			Message: fmt.Sprintf("too many patterns: %d (max %d)", len(pf.Patterns), MaxPatternCount),
		}
	}

	seen := make(map[string]struct{}, len(pf.Patterns))
	for i, p := range pf.Patterns {
		if p.ID == "" {
			return &PatternError{Index: i, Field: "id", Message: "id is required"}
		}
		if _, dup := seen[p.ID]; dup {
			return &PatternError{Index: i, ID: p.ID, Field: "id", Message: "duplicate id"}
		}
		seen[p.ID] = struct{}{}

		if p.Regex == "" {
			return &PatternError{Index: i, ID: p.ID, Field: "regex", Message: "regex is required"}
		}
		if len(p.Regex) > MaxPatternLength {
			return &PatternError{
				Index: i, ID: p.ID, Field: "regex",
				Message: fmt.Sprintf("pattern too long: %d bytes (max %d)", len(p.Regex), MaxPatternLength),
			}
		}
		if p.Action != "" {
			if _, ok := event.ParseAction(p.Action); !ok {
				return &PatternError{
					Index: i, ID: p.ID, Field: "action",
					Message: fmt.Sprintf("unknown action category %q", p.Action),
				}
			}
		}
		if p.Confidence < 0 || p.Confidence > 1 {
			return &PatternError{
				Index: i, ID: p.ID, Field: "confidence",
				Message: fmt.Sprintf("confidence %v outside [0,1]", p.Confidence),
			}
		}
	}
	return nil
}
