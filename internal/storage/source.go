package storage

import (
	"fmt"
	"log"
	"os"
)

// FileSource reads the two raw CSV blobs from disk. The extract is
// mandatory; a missing directory file only disables URL reconciliation.
type FileSource struct {
	ExtractPath string
	StoresPath  string
}

func NewFileSource(extractPath, storesPath string) *FileSource {
	return &FileSource{
		ExtractPath: extractPath,
		StoresPath:  storesPath,
	}
}

func (s *FileSource) Load() (string, string, error) {
	extract, err := os.ReadFile(s.ExtractPath)
	if err != nil {
		return "", "", fmt.Errorf("read extract csv: %w", err)
	}

	directory, err := os.ReadFile(s.StoresPath)
	if err != nil {
		log.Printf("stores directory csv not readable, skipping URL merge: %v", err)
		return string(extract), "", nil
	}

	return string(extract), string(directory), nil
}
