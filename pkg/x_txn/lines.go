package x_txn

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
)

const maxLine = 10 * 1024 * 1024

// LineReader reads one transaction per line with items split shell-style,
// so "ice cream" stays one item. Blank lines and # comments are skipped.
type LineReader struct{}

func (LineReader) Read(r io.Reader) ([][]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024), maxLine)

	var txns [][]string
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items, err := shlex.Split(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		txns = append(txns, items)
	}
	return txns, sc.Err()
}
