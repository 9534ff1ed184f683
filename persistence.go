package stockpile

import (
	"encoding/json"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/denismitr/stockpile/internal/storage/jsonfile"
)

// Adapter saves a repository's record set as an indented JSON array and
// loads it back. It is stateless with respect to the records themselves;
// it only remembers the target path, its config and the checksum of the
// payload it wrote (or loaded) last.
type Adapter[T Keyed] struct {
	path    string
	cfg     *Config
	lastSum uint64
}

// NewAdapter creates an adapter writing to and reading from path. The
// file is not touched until the first Save or Load.
func NewAdapter[T Keyed](path string, opts ...Option) *Adapter[T] {
	return &Adapter[T]{
		path: path,
		cfg:  newConfig(opts),
	}
}

// Save serializes records to the target path, replacing whatever was
// there. The write is atomic: a failed Save never leaves a partial file
// visible as a valid snapshot. With SkipUnchanged set, the write is
// elided only when the destination provably still holds the identical
// payload; a deleted or tampered file is always rewritten.
func (a *Adapter[T]) Save(records []T) error {
	b, err := json.MarshalIndent(records, "", a.cfg.Indent)
	if err != nil {
		return errors.Wrapf(err, "could not marshal %d records", len(records))
	}

	sum := xxhash.Sum64(b)
	if a.cfg.SkipUnchanged && a.lastSum == sum && a.destinationHolds(sum) {
		a.cfg.Log.Debugf("snapshot %s unchanged, skipping write", a.path)
		return nil
	}

	if err := jsonfile.WriteAtomic(a.path, b, a.cfg.SyncOnWrite); err != nil {
		return errors.Wrap(ErrStorageFailed, err.Error())
	}

	a.lastSum = sum
	a.cfg.Log.Debugf("saved %d records (%d bytes) to %s", len(records), len(b), a.path)

	return nil
}

// destinationHolds reports whether the file at the target path currently
// contains exactly the payload with the given checksum.
func (a *Adapter[T]) destinationHolds(sum uint64) bool {
	b, err := jsonfile.ReadAll(a.path)
	if err != nil {
		return false
	}

	return xxhash.Sum64(b) == sum
}

// Load reads the snapshot back. A missing file fails with
// ErrSourceNotFound, bytes that are not a JSON array of records with
// ErrSourceInvalid and read failures with ErrStorageFailed. Records come
// back in the order encoded in the stream.
func (a *Adapter[T]) Load() ([]T, error) {
	info, err := os.Stat(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrSourceNotFound, "file %s", a.path)
		}

		return nil, errors.Wrap(ErrStorageFailed, err.Error())
	}

	if a.cfg.MaxSourceSize > 0 && uint64(info.Size()) > a.cfg.MaxSourceSize {
		return nil, errors.Wrapf(
			ErrStorageFailed,
			"file %s is %d bytes, larger than the %d byte bound",
			a.path, info.Size(), a.cfg.MaxSourceSize,
		)
	}

	b, err := jsonfile.ReadAll(a.path)
	if err != nil {
		return nil, errors.Wrap(ErrStorageFailed, err.Error())
	}

	if !gjson.ValidBytes(b) || !gjson.ParseBytes(b).IsArray() {
		return nil, errors.Wrapf(ErrSourceInvalid, "file %s is not a record array", a.path)
	}

	records := make([]T, 0)
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, errors.Wrap(ErrSourceInvalid, err.Error())
	}

	a.lastSum = xxhash.Sum64(b)
	a.cfg.Log.Debugf("loaded %d records (%d bytes) from %s", len(records), len(b), a.path)

	return records, nil
}

// Restore loads the snapshot and swaps it into r wholesale. Existing
// entries are discarded, never merged. Duplicate keys inside the source
// fail with ErrSourceInvalid and leave r unchanged.
func (a *Adapter[T]) Restore(r *Repository[T]) error {
	records, err := a.Load()
	if err != nil {
		return err
	}

	if err := r.Replace(records); err != nil {
		return errors.Wrap(ErrSourceInvalid, err.Error())
	}

	return nil
}

// Persist saves the full contents of r.
func (a *Adapter[T]) Persist(r *Repository[T]) error {
	return a.Save(r.All())
}
