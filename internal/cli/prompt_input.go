package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/projects/internal/domain"
	"github.com/shopspring/decimal"
)

// Input reads prompted, line-based values from a console. Blank lines are
// absent values (nil), never errors.
type Input struct {
	r         *bufio.Reader
	out       io.Writer
	exhausted bool
}

// NewInput wraps in and out. Prompts are written to out without a newline.
func NewInput(in io.Reader, out io.Writer) *Input {
	if out == nil {
		out = io.Discard
	}
	return &Input{r: bufio.NewReader(in), out: out}
}

// Exhausted reports whether a read has hit the end of input.
func (in *Input) Exhausted() bool {
	return in.exhausted
}

// ReadLine writes "prompt: " and returns the trimmed line, or nil when the
// line is blank. End of input reads as a blank line.
func (in *Input) ReadLine(prompt string) *string {
	fmt.Fprint(in.out, prompt+": ")

	text := strings.TrimSpace(in.readPromptLine())
	if text == "" {
		return nil
	}
	return &text
}

// ReadInt reads a base-10 32-bit integer. A blank line yields nil, nil.
func (in *Input) ReadInt(prompt string) (*int, error) {
	text := in.ReadLine(prompt)
	if text == nil {
		return nil, nil
	}

	n, err := strconv.ParseInt(*text, 10, 32)
	if err != nil {
		return nil, invalidInteger(*text)
	}
	v := int(n)
	return &v, nil
}

// maxDecimalExponent bounds the exponent ReadDecimal accepts. Rescaling to
// two places costs a power of ten in the exponent's distance from -2.
const maxDecimalExponent = 32

// ReadDecimal reads a decimal number and fixes its scale to two digits,
// rounding half away from zero (3.145 -> 3.15). A blank line yields nil, nil.
func (in *Input) ReadDecimal(prompt string) (*decimal.Decimal, error) {
	text := in.ReadLine(prompt)
	if text == nil {
		return nil, nil
	}

	d, err := decimal.NewFromString(*text)
	if err != nil {
		return nil, invalidDecimal(*text)
	}
	if e := d.Exponent(); e > maxDecimalExponent || e < -maxDecimalExponent {
		return nil, invalidDecimal(*text)
	}
	return domain.NormalizeHours(&d), nil
}

// readPromptLine reads up to LF and drops a trailing CR. Any read error ends
// the input; the partial line, if any, is still returned.
func (in *Input) readPromptLine() string {
	if in.exhausted {
		return ""
	}

	line, err := in.r.ReadString('\n')
	line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	if err != nil && line == "" {
		in.exhausted = true
	}
	return line
}
