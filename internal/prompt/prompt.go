// Package prompt reads interactive input for the auth command.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads labelled values from one input stream. It keeps a single
// bufio.Reader so consecutive reads don't lose buffered input.
type Prompter struct {
	raw io.Reader
	br  *bufio.Reader
	w   io.Writer
}

func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{raw: r, br: bufio.NewReader(r), w: w}
}

// Line prints label and reads one trimmed line.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.w, label)
	line, err := p.br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	return strings.TrimSpace(line), nil
}

// Password reads a value with echo disabled when the input is a terminal,
// falling back to a plain (echoing) line read otherwise, e.g. when input
// is piped in.
func (p *Prompter) Password(label string) (string, error) {
	if f, ok := p.raw.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(p.w, label)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.w)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	return p.Line(label)
}
