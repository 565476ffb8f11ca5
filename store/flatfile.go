package store

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Flatfile stores one account per line as three ';'-separated fields:
//
//	name;pin;balance
//
// Save rewrites the whole file. Load skips malformed lines silently: a
// line is accepted only if it splits into exactly three fields and its
// balance parses as a number. No file handle is held between calls.
type Flatfile struct {
	path string
}

func NewFlatfile(path string) *Flatfile {
	return &Flatfile{path: path}
}

func (f *Flatfile) Load() ([]Record, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", f.path, err)
	}
	defer file.Close()

	var recs []Record
	sc := bufio.NewScanner(file)
	for sc.Scan() {
		parts := strings.Split(sc.Text(), ";")
		if len(parts) != 3 {
			continue
		}
		balance, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			continue
		}
		recs = append(recs, Record{Name: parts[0], PIN: parts[1], Balance: balance})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return recs, nil
}

func (f *Flatfile) Save(recs []Record) error {
	file, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", f.path, err)
	}

	w := bufio.NewWriter(file)
	for _, r := range recs {
		fmt.Fprintf(w, "%s;%s;%s\n", r.Name, r.PIN, FormatBalance(r.Balance))
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return file.Close()
}

func (f *Flatfile) Close() error { return nil }

// FormatBalance renders a balance in its shortest exact decimal form, the
// canonical text used both on the wire and in history records.
func FormatBalance(b float64) string {
	return strconv.FormatFloat(b, 'f', -1, 64)
}
