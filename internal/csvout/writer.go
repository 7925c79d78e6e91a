// Package csvout serializes intensity matrices as headerless CSV files.
package csvout

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/mousecrusher2/img2csv/internal/matrix"
)

// WriteMatrix writes m to w, one CSV record per row with plain integer
// cells. Lines end in CRLF on Windows and LF elsewhere.
func WriteMatrix(w io.Writer, m matrix.Matrix) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = runtime.GOOS == "windows"

	record := make([]string, m.Cols)
	for r := 0; r < m.Rows; r++ {
		for c, v := range m.Row(r) {
			record[c] = strconv.Itoa(int(v))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes m to path. The data goes to a temporary file in the same
// directory first and is renamed into place, so path either holds the
// complete matrix or is left as it was. The file is created with mode
// 0666 minus the process umask, like a plain os.Create.
func WriteFile(path string, m matrix.Matrix) (err error) {
	tmp, err := createTemp(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := WriteMatrix(tmp, m); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// createTemp opens a new file next to path. Unlike os.CreateTemp, which
// always uses 0600, the permissions are left to the umask.
func createTemp(path string) (*os.File, error) {
	dir, name := filepath.Split(path)
	for i := 0; i < 100; i++ {
		tmp := filepath.Join(dir, "."+name+"."+strconv.FormatUint(uint64(rand.Uint32()), 36))
		f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return f, err
	}
	return nil, fmt.Errorf("no free temporary name for %s", path)
}
