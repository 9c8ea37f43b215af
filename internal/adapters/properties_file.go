package adapters

import (
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/magiconair/properties"
	"github.com/rs/zerolog/log"

	"l10n-verify/internal/ports"
	"l10n-verify/internal/types"
)

// PropertiesFileAdapter reads Java-style .properties messages files.
type PropertiesFileAdapter struct {
	Encoding properties.Encoding
}

func NewPropertiesFileAdapter() PropertiesFileAdapter {
	return PropertiesFileAdapter{Encoding: properties.UTF8}
}

// Parse reads the file once. The canonical key set comes from a standard
// properties loader, where later duplicates win. Duplicates are counted
// separately over the raw lines.
func (a PropertiesFileAdapter) Parse(path string) (types.KeySet, types.KeySet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, &types.IOError{
			Path: path,
			Err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("failed to open messages file: " + path).
				WithCause(err),
		}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, readError(path, err)
	}

	seen, duplicates := scanDuplicateKeys(data)

	loader := &properties.Loader{Encoding: a.Encoding, DisableExpansion: true}
	props, err := loader.LoadBytes(data)
	if err != nil {
		log.Warn().
			Err(err).
			Str("path", path).
			Msg("messages file rejected by properties loader, using raw line keys")
		return seen, duplicates, nil
	}
	return types.NewKeySet(props.Keys()...), duplicates, nil
}

// scanDuplicateKeys walks raw lines and returns every key seen plus the keys
// seen more than once. Blank lines, # comments and lines without = are
// skipped. The key is the untrimmed text before the first =.
func scanDuplicateKeys(data []byte) (types.KeySet, types.KeySet) {
	seen := types.NewKeySet()
	duplicates := types.NewKeySet()
	for _, line := range splitLines(string(data)) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		equals := strings.IndexByte(line, '=')
		if equals < 0 {
			continue
		}
		key := line[:equals]
		if seen.Has(key) {
			duplicates.Add(key)
			continue
		}
		seen.Add(key)
	}
	return seen, duplicates
}

// splitLines splits on \n, \r\n and a bare \r, like the properties loader.
// A trailing terminator does not produce an empty last line.
func splitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			lines = append(lines, content[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, content[start:i])
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}

func readError(path string, cause error) error {
	return &types.IOError{
		Path: path,
		Err: errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read messages file: " + path).
			WithCause(cause),
	}
}

var _ ports.KeyFilePort = PropertiesFileAdapter{}
