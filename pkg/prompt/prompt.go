// Package prompt implements the interactive terminal prompts used by reposeed.
// Every destructive step of the bootstrap is gated through a Prompter so that
// command logic can be exercised in tests with scripted input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Question describes a single prompt. When Options is non-empty the answer is
// constrained to one of its members (case-insensitive); an empty answer
// resolves to Default when one is set. Secure suppresses terminal echo.
type Question struct {
	Message string
	Options []string
	Default string
	Secure  bool
}

// Prompter collects one line of input for a Question.
type Prompter interface {
	Ask(q Question) (string, error)
}

// TerminalPrompter reads answers from a stream, masking secure input when the
// stream is the process terminal.
type TerminalPrompter struct {
	in         *bufio.Reader
	out        io.Writer
	readSecret func() (string, error)
}

// New returns a TerminalPrompter bound to stdin/stdout.
func New() *TerminalPrompter {
	p := &TerminalPrompter{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
	p.readSecret = func() (string, error) {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return p.readLine()
		}
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return "", err
		}
		fmt.Fprintln(p.out)
		return string(b), nil
	}
	return p
}

// NewWithStreams returns a TerminalPrompter bound to arbitrary streams. Secure
// questions read a plain line; there is no echo to suppress off-terminal.
func NewWithStreams(in io.Reader, out io.Writer) *TerminalPrompter {
	p := &TerminalPrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
	p.readSecret = p.readLine
	return p
}

// Ask renders the question and collects input until a valid answer is given.
// With no options any single line is accepted. With options, input must match
// a member case-insensitively, or be empty while a default exists.
func (p *TerminalPrompter) Ask(q Question) (string, error) {
	fmt.Fprintln(p.out)
	defer fmt.Fprintln(p.out)

	for {
		fmt.Fprintf(p.out, "%s%s: ", q.Message, renderOptions(q))

		var answer string
		var err error
		if q.Secure {
			answer, err = p.readSecret()
		} else {
			answer, err = p.readLine()
		}
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)

		if answer == "" && q.Default != "" {
			return q.Default, nil
		}
		if len(q.Options) == 0 {
			return answer, nil
		}
		for _, opt := range q.Options {
			if strings.EqualFold(answer, opt) {
				return opt, nil
			}
		}
	}
}

func (p *TerminalPrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// renderOptions formats the bounded choice set, upper-casing the default
// member to signal it visually, e.g. [Y/n].
func renderOptions(q Question) string {
	if len(q.Options) == 0 {
		if q.Default != "" {
			return fmt.Sprintf(" [%s]", q.Default)
		}
		return ""
	}

	rendered := make([]string, len(q.Options))
	for i, opt := range q.Options {
		if q.Default != "" && strings.EqualFold(opt, q.Default) {
			rendered[i] = strings.ToUpper(opt)
		} else {
			rendered[i] = strings.ToLower(opt)
		}
	}
	return fmt.Sprintf(" [%s]", strings.Join(rendered, "/"))
}

// Confirm asks a yes/no question and reports whether the user accepted.
// def must be "y" or "n" and is returned on empty input.
func Confirm(p Prompter, message, def string) (bool, error) {
	answer, err := p.Ask(Question{
		Message: message,
		Options: []string{"y", "n"},
		Default: def,
	})
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}
