package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/anthropics/codenav/internal/graph"
)

// readEdges reads an edge list from path, one edge per line as "src tgt" or
// "src,tgt" (whitespace/comma separated integers). Blank lines and lines
// starting with "#" are ignored. This format belongs to the CLI only: the
// kernel packages never see raw files, only []graph.Edge.
func readEdges(path string) ([]graph.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edges file: %w", err)
	}
	defer f.Close()

	var edges []graph.Edge
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("edges file line %d: expected \"src tgt\", got %q", lineNo, line)
		}
		src, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("edges file line %d: invalid src %q: %w", lineNo, fields[0], err)
		}
		tgt, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("edges file line %d: invalid tgt %q: %w", lineNo, fields[1], err)
		}
		edges = append(edges, graph.Edge{Src: src, Tgt: tgt})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read edges file: %w", err)
	}
	return edges, nil
}

// readFileIndex reads a module-path -> file-path index from path, one entry
// per line as "modulePath filePath" (split at the first space character;
// filePath may contain spaces so it is everything after it). Blank lines
// and "#" comments are ignored.
func readFileIndex(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open index file: %w", err)
	}
	defer f.Close()

	index := make(map[string]string)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, " ", 2)
		if len(parts) != 2 || parts[0] == "" || strings.TrimSpace(parts[1]) == "" {
			return nil, fmt.Errorf("index file line %d: expected \"modulePath filePath\", got %q", lineNo, line)
		}
		index[parts[0]] = strings.TrimSpace(parts[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read index file: %w", err)
	}
	return index, nil
}

// splitExtensions parses a comma-separated --extensions flag value into a
// slice, trimming whitespace around each entry.
func splitExtensions(s string) []string {
	raw := strings.Split(s, ",")
	exts := make([]string, 0, len(raw))
	for _, e := range raw {
		e = strings.TrimSpace(e)
		if e != "" {
			exts = append(exts, e)
		}
	}
	return exts
}
