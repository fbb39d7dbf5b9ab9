// Package sheet turns the published job spreadsheet (CSV export) into JobRecords.
//
// The format is deliberately simple: one header line, comma separated cells,
// no quoting rules. A cell containing a literal comma is split like any other.
package sheet

import "strings"

// Row maps normalized header keys to cell values. Keys for cells missing at
// the end of a short line are absent.
type Row map[string]string

// Parse splits raw CSV text into header-keyed rows, preserving source order.
func Parse(raw string) []Row {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil
	}

	header := strings.Split(lines[0], ",")
	keys := make([]string, len(header))
	for i, h := range header {
		keys[i] = NormalizeKey(cleanCell(h))
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cells := strings.Split(line, ",")
		row := make(Row, len(keys))
		for i, key := range keys {
			if i >= len(cells) {
				break
			}
			if key == "" {
				continue
			}
			row[key] = cleanCell(cells[i])
		}
		rows = append(rows, row)
	}
	return rows
}

func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.TrimRight(raw, "\n")
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, "\n")
}
