// Package console is the terminal side of the game: prompts, status lines
// and screen clearing over plain reader/writer streams.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const clearSequence = "\033[H\033[2J"

type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// ReadLine prints prompt and blocks until a full line arrives. The line
// ending is stripped; a final line without newline is still returned.
func (c *Console) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.out, prompt)
	}
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadInt re-prompts until the answer is a whole number in [min, max].
func (c *Console) ReadInt(prompt string, min, max int) (int, error) {
	for {
		line, err := c.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			c.Print("Please enter a number.")
			continue
		}
		if n < min || n > max {
			c.Print(fmt.Sprintf("Please enter a number from %d to %d.", min, max))
			continue
		}
		return n, nil
	}
}

// NextBatch reads one line of simultaneous key presses.
func (c *Console) NextBatch(prompt string) (string, error) {
	return c.ReadLine(prompt)
}

func (c *Console) Print(line string) {
	fmt.Fprintln(c.out, line)
}

func (c *Console) ClearScreen() {
	fmt.Fprint(c.out, clearSequence)
}
