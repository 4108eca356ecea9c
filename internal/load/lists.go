package load

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// LoadPreviewIndex zips the parallel names and previews files into the
// preview index. The files pair up line by line, so differing line counts
// are a hard error: a silent misalignment would attach every preview to the
// wrong symbol.
func LoadPreviewIndex(namesPath, previewsPath string) (map[string]string, error) {
	names, err := readLines(namesPath)
	if err != nil {
		return nil, err
	}
	previews, err := readLines(previewsPath)
	if err != nil {
		return nil, err
	}
	if len(names) != len(previews) {
		return nil, &LoadError{
			Code:    ErrCodeListMismatch,
			Path:    namesPath,
			Message: fmt.Sprintf("%d names but %d previews", len(names), len(previews)),
		}
	}

	index := make(map[string]string, len(names))
	for i, name := range names {
		index[norm.NFC.String(name)] = previews[i]
	}
	return index, nil
}

// readLines reads a line-oriented list file. A single trailing newline does
// not count as an extra entry.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: err.Error()}
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
