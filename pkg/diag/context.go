// Package diag contains building blocks for formatting and showing diagnostic
// messages about expressions.
package diag

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Context is a range of text in a named source. It is attached to errors
// that can be traced to a particular item of an expression.
type Context struct {
	Name   string
	Source string
	Ranging
}

// NewContext creates a new Context.
func NewContext(name, source string, r Ranger) *Context {
	return &Context{name, source, r.Range()}
}

// Variables controlling the style of the culprit.
var (
	culpritLineBegin   = "\033[1;4m"
	culpritLineEnd     = "\033[m"
	culpritPlaceHolder = "^"
)

// Show shows the name of the source, the line range and the lines containing
// the culprit, with the culprit highlighted. Continuation lines of a
// multi-line culprit are indented by sourceIndent and aligned with the first
// line.
func (c *Context) Show(sourceIndent string) string {
	if err := c.checkPosition(); err != nil {
		return err.Error()
	}
	desc := c.Name + ", " + c.lineRange() + " "
	descIndent := strings.Repeat(" ", runewidth.StringWidth(desc))
	return desc + c.relevantSource(sourceIndent+descIndent)
}

func (c *Context) checkPosition() error {
	if c.From == -1 {
		return fmt.Errorf("%s, unknown position", c.Name)
	} else if c.From < 0 || c.To > len(c.Source) || c.From > c.To {
		return fmt.Errorf("%s, invalid position %d-%d", c.Name, c.From, c.To)
	}
	return nil
}

func (c *Context) lineRange() string {
	begin := strings.Count(c.Source[:c.From], "\n") + 1
	end := begin + strings.Count(c.culprit(), "\n")
	if begin == end {
		return fmt.Sprintf("line %d:", begin)
	}
	return fmt.Sprintf("line %d-%d:", begin, end)
}

// The culprit without a trailing newline.
func (c *Context) culprit() string {
	return strings.TrimSuffix(c.Source[c.From:c.To], "\n")
}

func (c *Context) relevantSource(sourceIndent string) string {
	before := c.Source[:c.From]
	head := before[strings.LastIndexByte(before, '\n')+1:]

	culprit := c.culprit()
	var tail string
	if !strings.HasSuffix(c.Source[c.From:c.To], "\n") {
		after := c.Source[c.To:]
		if i := strings.IndexByte(after, '\n'); i != -1 {
			after = after[:i]
		}
		tail = after
	}
	if culprit == "" {
		culprit = culpritPlaceHolder
	}

	var sb strings.Builder
	sb.WriteString(head)
	for i, line := range strings.Split(culprit, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
			sb.WriteString(sourceIndent)
		}
		sb.WriteString(culpritLineBegin)
		sb.WriteString(line)
		sb.WriteString(culpritLineEnd)
	}
	sb.WriteString(tail)
	return sb.String()
}
