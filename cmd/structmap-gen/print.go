package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/signadot/structmap/codegen"
)

type printer struct {
	w io.Writer

	ok, stale, add, del *color.Color
}

// newPrinter colors output only when w is a terminal.
func newPrinter(w io.Writer) *printer {
	p := &printer{
		w:     w,
		ok:    color.New(color.FgGreen),
		stale: color.New(color.FgYellow, color.Bold),
		add:   color.New(color.FgGreen),
		del:   color.New(color.FgRed),
	}
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd())
	}
	for _, c := range []*color.Color{p.ok, p.stale, p.add, p.del} {
		if tty {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *printer) result(res *codegen.Result, check bool) {
	file := relPath(res.OutputFile)
	types := strings.Join(res.Types, ", ")
	switch {
	case check && res.Stale:
		fmt.Fprintf(p.w, "%s %s (%s)\n", p.stale.Sprint("stale"), file, types)
		p.diff(res.Diff)
	case check:
		fmt.Fprintf(p.w, "%s %s (%s)\n", p.ok.Sprint("ok"), file, types)
	case res.Written:
		fmt.Fprintf(p.w, "%s %s (%s)\n", p.ok.Sprint("wrote"), file, types)
	default:
		fmt.Fprintf(p.w, "%s %s (%s)\n", p.ok.Sprint("unchanged"), file, types)
	}
}

// diff prints changed lines of a codegen.LineDiff.
func (p *printer) diff(d string) {
	for _, line := range strings.Split(strings.TrimSuffix(d, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(p.w, p.add.Sprint(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(p.w, p.del.Sprint(line))
		}
	}
}
