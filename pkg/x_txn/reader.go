// Package x_txn reads transaction files into item lists.
package x_txn

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrUnknownFormat   = errors.New("unknown transaction format")
	ErrUnknownEncoding = errors.New("unknown text encoding")
)

const (
	FormatCSV   = "csv"
	FormatLines = "lines"
)

// Reader turns a stream into transactions, one item list each.
type Reader interface {
	Read(r io.Reader) ([][]string, error)
}

// Options selects how a transaction file is parsed.
type Options struct {
	Format    string // csv, lines; empty means guess from the extension
	Delimiter rune   // csv only, defaults to ','
	Comment   rune   // csv only, 0 disables
	Encoding  string // utf-8 (default), latin1, iso-8859-1, windows-1252
}

// NewReader returns the reader for opts.Format.
func NewReader(opts Options) (Reader, error) {
	switch strings.ToLower(opts.Format) {
	case FormatCSV:
		return &CSVReader{Delimiter: opts.Delimiter, Comment: opts.Comment}, nil
	case FormatLines, "txt":
		return &LineReader{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
	}
}

// FormatFor guesses the format from a file name.
func FormatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv":
		return FormatCSV
	default:
		return FormatLines
	}
}

// ReadFrom decodes r with opts.Encoding and parses it.
func ReadFrom(r io.Reader, opts Options) ([][]string, error) {
	rd, err := NewReader(opts)
	if err != nil {
		return nil, err
	}
	dec, err := Decode(r, opts.Encoding)
	if err != nil {
		return nil, err
	}
	return rd.Read(dec)
}

// ReadFile loads transactions from path. A missing format is guessed from
// the extension, and .tsv files default to a tab delimiter.
func ReadFile(path string, opts Options) ([][]string, error) {
	if opts.Format == "" {
		opts.Format = FormatFor(path)
	}
	if opts.Delimiter == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
		opts.Delimiter = '\t'
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	txns, err := ReadFrom(f, opts)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return txns, nil
}
