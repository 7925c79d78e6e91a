package csvout

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Ext is the only accepted output extension.
const Ext = ".csv"

// ErrInvalidOutputExtension is returned for output paths not ending in .csv.
var ErrInvalidOutputExtension = errors.New("output file must be a csv file")

// ValidateOutputPath checks that path has exactly the .csv extension.
// A bare dot-file such as ".csv" has no extension and is rejected.
func ValidateOutputPath(path string) error {
	name := filepath.Base(path)
	if ext := filepath.Ext(name); ext != Ext || ext == name {
		return fmt.Errorf("%w: %q", ErrInvalidOutputExtension, path)
	}
	return nil
}

// ChannelPath derives the file for one channel from the base output path:
// out/img.csv with channel "red" becomes out/img_red.csv. An empty channel
// returns base unchanged.
func ChannelPath(base, channel string) string {
	if channel == "" {
		return base
	}
	name := filepath.Base(base)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(filepath.Dir(base), stem+"_"+channel+Ext)
}
