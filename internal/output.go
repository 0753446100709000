package internal

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Output is the sink for all text the game prints.
type Output interface {
	// Write writes a fragment of text. Fragments need not end in newlines.
	Write(text string)
	// EmphasisOn begins emphasized text.
	EmphasisOn()
	// EmphasisOff ends emphasized text.
	EmphasisOff()
}

// TextOutput is an Output writing to an io.Writer. If Width is positive, text
// is wrapped at word boundaries to fit it. If Styled is true, emphasis is
// rendered with ANSI bold.
type TextOutput struct {
	W      io.Writer
	Width  int
	Styled bool

	col int
	// spaces counts spaces not yet written, which are dropped at a wrap.
	spaces int
}

// NewTextOutput creates a TextOutput.
func NewTextOutput(w io.Writer, width int, styled bool) *TextOutput {
	return &TextOutput{W: w, Width: width, Styled: styled}
}

// Write writes text, wrapping it if the output has a width.
func (o *TextOutput) Write(text string) {
	if o.Width <= 0 {
		io.WriteString(o.W, text)
		return
	}
	for text != "" {
		switch text[0] {
		case '\n':
			io.WriteString(o.W, "\n")
			o.col, o.spaces = 0, 0
			text = text[1:]
		case ' ':
			o.spaces++
			text = text[1:]
		default:
			k := 0
			for k < len(text) && text[k] != ' ' && text[k] != '\n' {
				k++
			}
			word := text[:k]
			text = text[k:]
			n := utf8.RuneCountInString(word)
			if o.col > 0 && o.col+o.spaces+n > o.Width {
				io.WriteString(o.W, "\n")
				o.col, o.spaces = 0, 0
			}
			io.WriteString(o.W, strings.Repeat(" ", o.spaces)+word)
			o.col += o.spaces + n
			o.spaces = 0
		}
	}
}

// EmphasisOn begins bold text if the output is styled.
func (o *TextOutput) EmphasisOn() {
	if o.Styled {
		io.WriteString(o.W, "\x1b[1m")
	}
}

// EmphasisOff ends bold text if the output is styled.
func (o *TextOutput) EmphasisOff() {
	if o.Styled {
		io.WriteString(o.W, "\x1b[0m")
	}
}

// outputWriter adapts an Output to an io.Writer so that a log.Logger can
// report through it.
type outputWriter struct {
	out Output
}

func (w outputWriter) Write(p []byte) (int, error) {
	w.out.Write(string(p))
	return len(p), nil
}
