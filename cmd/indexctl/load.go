package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joshuapare/graphindex/cmd/indexctl/logger"
	"github.com/joshuapare/graphindex/index"
)

// errMalformedLine reports an input line that is not a key/element association.
var errMalformedLine = errors.New("malformed line")

// maxLineLen is the longest association line accepted, separator included.
const maxLineLen = 4 << 20

// loadIndex opens path and indexes every association it contains.
// The index is a FoldedIndex when --fold is set.
func loadIndex(path string) (index.Index[string, string], error) {
	printVerbose("Loading associations: %s\n", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	idx := newIndex()
	n, err := readAssociations(f, idx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	stats := idx.Stats()
	logger.Debug("index loaded",
		"path", path, "lines", n, "keys", stats.Keys, "values", stats.Values, "impl", stats.Impl)
	printVerbose("Indexed %d associations (%d keys)\n", stats.Values, stats.Keys)
	return idx, nil
}

func newIndex() index.Index[string, string] {
	if foldKeys {
		return index.NewFoldedIndex[string](index.Options{})
	}
	return index.NewDictionaryIndex[string, string](index.Options{})
}

// readAssociations parses "key<TAB>element" lines from r into idx and returns
// the number of associations read.
func readAssociations(r io.Reader, idx index.Index[string, string]) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLen)
	lineNo, count := 0, 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, elem, ok := strings.Cut(line, "\t")
		if !ok {
			return count, fmt.Errorf("line %d: %w: missing tab separator", lineNo, errMalformedLine)
		}
		if elem == "" {
			return count, fmt.Errorf("line %d: %w: empty element", lineNo, errMalformedLine)
		}

		idx.AddOrUpdate(key, elem)
		count++
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return count, fmt.Errorf("line %d: %w: longer than %d bytes", lineNo+1, errMalformedLine, maxLineLen)
		}
		return count, fmt.Errorf("failed to read input: %w", err)
	}
	return count, nil
}
