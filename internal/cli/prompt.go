package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// prompter reads answers line by line, writing prompts to stderr so stdout
// stays clean for output.
type prompter struct {
	in io.Reader
	r  *bufio.Reader
	w  io.Writer
}

func newPrompter(cmd *cobra.Command) *prompter {
	in := cmd.InOrStdin()
	return &prompter{in: in, r: bufio.NewReader(in), w: cmd.ErrOrStderr()}
}

// terminal returns the input's descriptor when it is an interactive
// terminal.
func (p *prompter) terminal() (int, bool) {
	f, ok := p.in.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

func (p *prompter) line() (string, error) {
	s, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(s), nil
}

// ask reads a value, returning def for an empty answer or end of input.
func (p *prompter) ask(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.w, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.w, "%s: ", label)
	}
	s, err := p.line()
	if errors.Is(err, io.EOF) {
		return def, nil
	}
	if err != nil {
		return "", err
	}
	if s == "" {
		return def, nil
	}
	return s, nil
}

// secret reads a value without echoing it. Piped input is read as a plain
// line.
func (p *prompter) secret(label string) (string, error) {
	fmt.Fprintf(p.w, "%s: ", label)
	fd, ok := p.terminal()
	if !ok {
		s, err := p.line()
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return s, err
	}
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(p.w)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (p *prompter) askInt(label string, def int) (int, error) {
	d := ""
	if def > 0 {
		d = strconv.Itoa(def)
	}
	for {
		s, err := p.ask(label, d)
		if err != nil {
			return 0, err
		}
		if s == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(s)
		if err == nil && n >= 0 {
			return n, nil
		}
		fmt.Fprintf(p.w, "  %q is not a whole number\n", s)
	}
}

// choose presents a numbered list and returns the selected index. With
// allowNone, an empty answer returns -1.
func (p *prompter) choose(label string, items []string, allowNone bool) (int, error) {
	fmt.Fprintf(p.w, "\n%s\n", label)
	for i, item := range items {
		fmt.Fprintf(p.w, "  %d) %s\n", i+1, item)
	}
	hint := fmt.Sprintf("Enter number [1-%d]", len(items))
	if allowNone {
		hint += " or leave empty"
	}
	for {
		fmt.Fprintf(p.w, "%s: ", hint)
		s, err := p.line()
		if errors.Is(err, io.EOF) {
			if allowNone {
				return -1, nil
			}
			return 0, errors.New("no selection made")
		}
		if err != nil {
			return 0, err
		}
		if s == "" && allowNone {
			return -1, nil
		}
		n, err := strconv.Atoi(s)
		if err == nil && n >= 1 && n <= len(items) {
			return n - 1, nil
		}
		fmt.Fprintf(p.w, "  invalid selection %q\n", s)
	}
}

// confirm asks a yes/no question; only an explicit yes confirms.
func (p *prompter) confirm(q string) bool {
	fmt.Fprintf(p.w, "%s [y/N]: ", q)
	s, err := p.line()
	if err != nil {
		return false
	}
	switch strings.ToLower(s) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
