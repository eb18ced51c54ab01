// Package input reads email address lists: one address per line.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadFile loads addresses from path. Lines are trimmed; empty lines
// and lines starting with # are skipped. A positive limit caps the
// number of addresses returned; zero or less means no limit.
func ReadFile(path string, limit int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	var emails []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		emails = append(emails, line)
		if limit > 0 && len(emails) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}

	return emails, nil
}
