// Package plain writes terminal output as coloured lines for non-interactive use.
package plain

import (
	"fmt"
	"io"
	"sync"

	"github.com/bnema/netrun/internal/domain"
	"github.com/bnema/netrun/internal/ports"
	"github.com/fatih/color"
)

type Sink struct {
	mu     sync.Mutex
	out    io.Writer
	styles map[domain.Style]*color.Color
	link   *color.Color
}

var _ ports.OutputSink = (*Sink)(nil)

// NewSink writes to out. Colours are only emitted when colored is true.
func NewSink(out io.Writer, colored bool) *Sink {
	s := &Sink{
		out: out,
		styles: map[domain.Style]*color.Color{
			domain.StylePrimary: color.New(color.FgGreen),
			domain.StyleError:   color.New(color.FgRed),
			domain.StyleSuccess: color.New(color.FgHiGreen, color.Bold),
			domain.StyleInfo:    color.New(color.FgCyan),
			domain.StyleWarn:    color.New(color.FgYellow),
		},
		link: color.New(color.FgHiWhite, color.Underline),
	}
	for _, c := range s.all() {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (s *Sink) all() []*color.Color {
	out := []*color.Color{s.link}
	for _, c := range s.styles {
		out = append(out, c)
	}
	return out
}

func (s *Sink) Write(record domain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch r := record.(type) {
	case domain.TextLine:
		c, ok := s.styles[r.Style]
		if !ok {
			c = s.styles[domain.StylePrimary]
		}
		_, _ = c.Fprintln(s.out, r.Text)
	case domain.Link:
		_, _ = fmt.Fprint(s.out, r.Dashes)
		_, _ = s.link.Fprintln(s.out, r.Hostname)
	case domain.RawContent:
		_, _ = fmt.Fprintln(s.out, r.Value)
	}
}

// WriteAll replays records in order.
func (s *Sink) WriteAll(records []domain.Record) {
	for _, r := range records {
		s.Write(r)
	}
}
