package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm writes question followed by " (o/n) " to out and reads one line
// from in. "o", "oui", "y" and "yes" confirm, in any case. Anything else,
// including end of input, declines.
func Confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprint(out, question+" (o/n) ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(out)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "o", "oui", "y", "yes":
		return true
	}
	return false
}
