package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// prompter asks the user before files are overwritten.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	all bool
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// confirmOverwrite asks whether path may be overwritten. Answering "a"
// accepts this and every later file.
func (p *prompter) confirmOverwrite(path string) bool {
	if p.all {
		return true
	}

	fmt.Fprintf(p.out, "Are you sure you want to overwrite file %s? [y/N/a] ", path)
	response, err := p.in.ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	switch strings.TrimSpace(strings.ToLower(response)) {
	case "y", "yes":
		return true
	case "a", "all":
		p.all = true
		return true
	default:
		return false
	}
}

// isInteractive returns true if stdin is a terminal.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// terminalWidth returns the width of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width, true
		}
	}
	return 0, false
}
