package inventory

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const lineFields = 3 // id,name,quantity

const maxLineBytes = 1 << 20

// ParseError reports the first malformed line of an item file. The whole
// read fails; there are no partial results.
type ParseError struct {
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: field %q: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReadItems parses id,name,quantity lines from r into validated items.
// Blank lines are skipped. On the first malformed line the read is
// abandoned and a *ParseError names the line and the offending field.
func ReadItems(r io.Reader) ([]Item, error) {
	var items []Item

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}

		item, err := parseLine(line, raw)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			// the scanner stops before handing over the oversized line
			return nil, &ParseError{Line: line + 1, Field: "line", Err: err}
		}

		return nil, errors.Wrap(err, "could not read item lines")
	}

	return items, nil
}

// ReadFile reads the item file at path. Every call re-reads from the
// start, so the sequence is restartable.
func ReadFile(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open item file %s", path)
	}

	defer func() {
		_ = f.Close()
	}()

	return ReadItems(f)
}

func parseLine(line int, raw string) (Item, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != lineFields {
		return Item{}, &ParseError{
			Line:  line,
			Field: "line",
			Err:   errors.Errorf("expected %d comma separated fields, got %d", lineFields, len(parts)),
		}
	}

	id, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return Item{}, &ParseError{Line: line, Field: "id", Err: err}
	}

	name := strings.TrimSpace(parts[1])

	quantity, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
	if err != nil {
		return Item{}, &ParseError{Line: line, Field: "quantity", Err: err}
	}

	item, err := NewItem(id, name, quantity)
	if err != nil {
		return Item{}, &ParseError{Line: line, Field: fieldOf(id, name, quantity), Err: err}
	}

	return item, nil
}

func fieldOf(id int64, name string, quantity int64) string {
	switch {
	case id <= 0:
		return "id"
	case strings.TrimSpace(name) == "":
		return "name"
	case quantity < 0:
		return "quantity"
	default:
		return "line"
	}
}
