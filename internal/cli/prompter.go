package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions on out and reads one line of input per answer.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints prompt and returns the next input line without its line ending.
// A final line without a newline is returned as usual; io.EOF is returned
// only when there is nothing left to read.
func (p *Prompter) Ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt+" "); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
