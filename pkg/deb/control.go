// pkg/deb/control.go
package deb

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseControl parses a Debian control stanza into a field map.
// Continuation lines extend the previous field; an empty line ends the
// first stanza, which is all a binary control member carries.
func ParseControl(r io.Reader) (map[string]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // Handle large descriptions

	fields := make(map[string]string)
	var lastField string

	for scanner.Scan() {
		line := scanner.Text()

		// Empty line indicates end of stanza
		if line == "" {
			break
		}

		// Continuation line (starts with space or tab)
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if lastField != "" {
				fields[lastField] += "\n" + strings.TrimSpace(line)
			}
			continue
		}

		// Parse field: value
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}

		field := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		fields[field] = value
		lastField = field
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning control stanza: %w", err)
	}

	return fields, nil
}
