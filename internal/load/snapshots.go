package load

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/text/unicode/norm"

	"symbolgen/internal/symbol"
)

// snapshotFile mirrors the CUE shape of one snapshot manifest.
type snapshotFile struct {
	Availability struct {
		IOS     string `json:"iOS"`
		MacOS   string `json:"macOS"`
		TvOS    string `json:"tvOS"`
		WatchOS string `json:"watchOS"`
	} `json:"availability"`
	Symbols []string `json:"symbols"`
}

// LoadSnapshots reads every .cue manifest under dir and flattens them into
// one record stream. Files are processed in sorted path order so the stream
// is reproducible; within a file, manifest order is preserved.
func LoadSnapshots(dir string) ([]symbol.ScannedRecord, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: dir, Message: "snapshot directory not found"}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: dir, Message: err.Error()}
	}
	if !info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: dir, Message: "not a directory"}
	}

	files, err := findCUEFiles(dir)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: dir, Message: err.Error()}
	}
	if len(files) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, Path: dir, Message: "no .cue snapshot manifests found"}
	}
	sort.Strings(files)

	var records []symbol.ScannedRecord
	for _, path := range files {
		recs, err := loadSnapshotFile(path)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

// loadSnapshotFile parses a single snapshot manifest.
func loadSnapshotFile(path string) ([]symbol.ScannedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: err.Error()}
	}

	ctx := cuecontext.New()
	value := ctx.CompileBytes(data)
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Path: path, Message: err.Error()}
	}

	var sf snapshotFile
	if err := value.Decode(&sf); err != nil {
		return nil, &LoadError{Code: ErrCodeParseFailed, Path: path, Message: err.Error()}
	}

	avail := symbol.Availability{
		IOS:     sf.Availability.IOS,
		MacOS:   sf.Availability.MacOS,
		TvOS:    sf.Availability.TvOS,
		WatchOS: sf.Availability.WatchOS,
	}
	if avail.IOS == "" || avail.MacOS == "" || avail.TvOS == "" || avail.WatchOS == "" {
		return nil, &LoadError{Code: ErrCodeParseFailed, Path: path, Message: "availability must declare all four platform versions"}
	}
	if len(sf.Symbols) == 0 {
		return nil, &LoadError{Code: ErrCodeParseFailed, Path: path, Message: "snapshot declares no symbols"}
	}

	records := make([]symbol.ScannedRecord, 0, len(sf.Symbols))
	for i, name := range sf.Symbols {
		name = norm.NFC.String(strings.TrimSpace(name))
		if name == "" {
			return nil, &LoadError{Code: ErrCodeParseFailed, Path: path, Message: fmt.Sprintf("symbols[%d] is empty", i)}
		}
		records = append(records, symbol.ScannedRecord{RawName: name, Availability: avail})
	}
	return records, nil
}

// findCUEFiles lists the .cue files directly under dir.
func findCUEFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".cue" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
