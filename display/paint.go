// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Paint draws a composed table, one screen line per row.
// It does not call Show; the caller positions the cursor first.
func Paint(s tcell.Screen, t Table) {
	s.Clear()
	width, _ := s.Size()
	drawLine(s, 0, width, t.Header, tcell.StyleDefault)
	for _, r := range t.Rows {
		style := tcell.StyleDefault
		if r.Highlight {
			style = style.Bold(true)
		}
		// tcell drops cells outside the screen, so a short terminal only loses rows
		drawLine(s, r.Line, width, r.Text, style)
	}
}

func drawLine(s tcell.Screen, y, width int, text string, style tcell.Style) {
	text = runewidth.FillRight(runewidth.Truncate(text, width, ""), width)
	x := 0
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// Print writes a table as plain text lines.
func Print(w io.Writer, t Table) error {
	if _, err := io.WriteString(w, t.Header+"\n"); err != nil {
		return err
	}
	for _, r := range t.Rows {
		if _, err := io.WriteString(w, r.Text+"\n"); err != nil {
			return err
		}
	}
	return nil
}
