// Package jsonfile holds the low level file plumbing of the persistence
// adapter: whole-file reads and atomic whole-file writes.
package jsonfile

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// WriteAtomic replaces the contents at path with data. The bytes go to a
// temporary sibling file first and are renamed into place, so readers
// either see the previous snapshot or the complete new one, never a
// partial write. The temporary file is removed on every failure path.
func WriteAtomic(path string, data []byte, syncBeforeSwap bool) error {
	tmpName := path + ".tmp"
	tmpF, err := os.Create(tmpName)
	if err != nil {
		return errors.Wrapf(err, "could not create temporary file %s", tmpName)
	}

	defer func() {
		_ = tmpF.Close()
		_ = os.Remove(tmpName)
	}()

	n, err := tmpF.Write(data)
	if err != nil {
		return errors.Wrapf(err, "could not write into temporary file %s", tmpName)
	}

	if n != len(data) {
		return errors.Errorf("wrote %d of %d bytes into temporary file %s", n, len(data), tmpName)
	}

	if syncBeforeSwap {
		if err := tmpF.Sync(); err != nil {
			return errors.Wrapf(err, "could not sync temporary file %s", tmpName)
		}
	}

	if err := tmpF.Close(); err != nil {
		return errors.Wrapf(err, "could not close temporary file %s", tmpName)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "could not swap %s for %s", path, tmpName)
	}

	return nil
}

// ReadAll slurps the file at path. The initial buffer is sized from
// Stat, growing as needed for files that understate their size.
func ReadAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open file %s", path)
	}

	defer func() {
		_ = f.Close()
	}()

	var size int
	if info, err := f.Stat(); err == nil {
		size64 := info.Size()
		if int64(int(size64)) == size64 {
			size = int(size64)
		}
	}

	size++ // one byte for final read at EOF

	if size < 512 {
		size = 512
	}

	data := make([]byte, 0, size)
	for {
		if len(data) >= cap(data) {
			d := append(data[:cap(data)], 0)
			data = d[:len(data)]
		}

		n, err := f.Read(data[len(data):cap(data)])
		data = data[:len(data)+n]
		if err != nil {
			if err == io.EOF {
				break
			}

			return nil, errors.Wrapf(err, "could not read file %s", path)
		}
	}

	return data, nil
}
