package hdbscan

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteHierarchy writes one line per recorded density level, oldest
// (highest density threshold) first and the terminal all-noise level
// last: "<edgeWeight>,<label0>,<label1>,…,<labelN-1>\n". File
// handling is the caller's concern (spec.md §1/§6); this only
// formats and writes.
func (e *Engine) WriteHierarchy(w io.Writer) error {
	if e.tree == nil {
		return ErrNotInitialized
	}

	lines := make([]int64, 0, len(e.tree.Hierarchy))
	for line := range e.tree.Hierarchy {
		if line != 0 {
			lines = append(lines, line)
		}
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i] < lines[j] })
	lines = append(lines, 0)

	var sb strings.Builder
	for _, line := range lines {
		entry := e.tree.Hierarchy[line]
		sb.Reset()
		sb.WriteString(strconv.FormatFloat(entry.EdgeWeight, 'g', -1, 64))
		for _, lbl := range entry.Labels {
			sb.WriteByte(',')
			sb.WriteString(strconv.Itoa(lbl))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteVisualizationSidecar writes the two-line sidecar spec.md §6
// prescribes: a constant format-version marker and the number of
// recorded hierarchy levels.
func (e *Engine) WriteVisualizationSidecar(w io.Writer) error {
	if e.tree == nil {
		return ErrNotInitialized
	}
	_, err := fmt.Fprintf(w, "1\n%d\n", len(e.tree.Hierarchy))
	return err
}
