package probe

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
)

// command sends one SMTP command line and reads the reply.
func command(w *bufio.Writer, r *bufio.Reader, cmd string) (int, string, error) {
	if _, err := w.WriteString(cmd + "\r\n"); err != nil {
		return 0, "", err
	}
	if err := w.Flush(); err != nil {
		return 0, "", err
	}
	return readReply(r)
}

// sendQuit ends the session politely (best-effort, ignores errors).
func sendQuit(w *bufio.Writer) {
	_, _ = w.WriteString("QUIT\r\n")
	_ = w.Flush()
}

// readReply reads a (possibly multi-line) SMTP reply.
func readReply(r *bufio.Reader) (code int, full string, err error) {
	var lines []string
	for {
		line, readErr := r.ReadString('\n')
		if readErr != nil {
			return 0, "", fmt.Errorf("read SMTP reply: %w", readErr)
		}
		line = strings.TrimRight(line, "\r\n")
		if len(line) < 3 {
			return 0, "", errors.New("SMTP reply line too short")
		}
		lines = append(lines, line)
		// If the 4th character is not '-', this is the last line
		if len(line) < 4 || line[3] != '-' {
			break
		}
	}

	lastLine := lines[len(lines)-1]
	if _, err := fmt.Sscanf(lastLine[:3], "%d", &code); err != nil {
		return 0, "", fmt.Errorf("invalid SMTP reply code %q: %w", lastLine[:3], err)
	}
	return code, strings.Join(lines, " | "), nil
}
