package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// WaitForKey prints prompt and blocks until the operator presses a key.
// On a terminal a single key press is enough; otherwise a full line (or EOF) is consumed.
func WaitForKey(in io.Reader, out io.Writer, prompt string) error {
	if prompt != "" {
		_, _ = fmt.Fprint(out, prompt)
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return waitForRawKey(f, out)
	}

	_, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read from input: %w", err)
	}
	return nil
}

func waitForRawKey(f *os.File, out io.Writer) error {
	fd := int(f.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to switch terminal to raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, state)
		_, _ = fmt.Fprintln(out)
	}()

	var key [1]byte
	if _, err := f.Read(key[:]); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read key press: %w", err)
	}
	return nil
}
