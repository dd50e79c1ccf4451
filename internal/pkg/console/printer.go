package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/MGTheTrain/crypto-tester/internal/pkg/clock"
)

// Printer writes the signature test report to an output stream.
type Printer struct {
	out       io.Writer
	styles    Styles
	stopwatch *Stopwatch
}

// NewPrinter creates a Printer writing to out with the given styles and time source.
func NewPrinter(out io.Writer, styles Styles, c clock.Clock) *Printer {
	return &Printer{
		out:       out,
		styles:    styles,
		stopwatch: NewStopwatch(c),
	}
}

// StartTimer starts the stopwatch all task timestamps are relative to.
func (p *Printer) StartTimer() {
	p.stopwatch.Start()
}

// StopTimer freezes the stopwatch.
func (p *Printer) StopTimer() {
	p.stopwatch.Stop()
}

// Elapsed returns the time since StartTimer.
func (p *Printer) Elapsed() string {
	return FormatElapsed(p.stopwatch.Elapsed())
}

// Banner prints the welcome lines followed by an empty line.
func (p *Printer) Banner(lines ...string) {
	for _, line := range lines {
		p.printf("%s\n", paint(p.styles.Success, line))
	}
	p.printf("\n")
}

// Task announces a step. The line is finished by OK or Fail.
func (p *Printer) Task(name string) {
	p.printf("%s", paint(p.styles.Label, fmt.Sprintf("[%s] %s...", p.Elapsed(), name)))
}

// OK marks the announced step as successful.
func (p *Printer) OK() {
	p.status(p.styles.Success.Render("OK " + p.Elapsed()))
}

// Fail marks the announced step as failed and prints the error block.
func (p *Printer) Fail(err error, stack string) {
	p.status(p.styles.Failure.Render("FAIL " + p.Elapsed()))
	p.printf("%s\n", paint(p.styles.Detail, "=== Error ==="))
	p.printf("%s\n", paint(p.styles.Detail, "Message: "+err.Error()))
	if stack = strings.TrimRight(stack, "\n"); stack != "" {
		p.printf("%s\n", paint(p.styles.Detail, "Stack Trace:\n"+stack))
	}
}

// Completed prints the success line with the total run time.
func (p *Printer) Completed() {
	p.printf("\n\n%s\n\n", paint(p.styles.Success, fmt.Sprintf("Test completed without any errors in %s second(s)", p.Elapsed())))
}

// KeyValue prints a labelled value followed by an empty line.
func (p *Printer) KeyValue(key, value string) {
	p.printf("%s%s\n\n", paint(p.styles.Label, key+": "), paint(p.styles.Success, value))
}

// Pause prints prompt in the detail style and waits for a key press on in.
func (p *Printer) Pause(in io.Reader, prompt string) error {
	return WaitForKey(in, p.out, paint(p.styles.Detail, prompt))
}

func (p *Printer) status(marker string) {
	p.printf("%s%s%s\n", p.styles.Bracket.Render(" ["), marker, p.styles.Bracket.Render("]"))
}

func (p *Printer) printf(format string, args ...interface{}) {
	// The report is best effort; a closed stdout has nowhere to report to.
	_, _ = fmt.Fprintf(p.out, format, args...)
}
