// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package top

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// handleEvent applies a terminal event and reports whether the user quit.
// Every event forces a redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.dirty = true
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.dirty = true
		a.screen.Sync()
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter, tcell.KeyLF:
		a.toggleSelected()
	case tcell.KeyDown:
		a.y++
	case tcell.KeyUp:
		a.y = max(a.y-1, 0)
	case tcell.KeyRight:
		a.x++
	case tcell.KeyLeft:
		a.x = max(a.x-1, 0)
	case tcell.KeyHome, tcell.KeyCtrlA:
		a.x = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		a.x = a.cols - 1
	case tcell.KeyPgUp:
		a.y = 0
	case tcell.KeyPgDn:
		a.y = a.rows - 1
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'q':
			return true
		case 'm':
			a.showMcast = !a.showMcast
		case 'n':
			a.useAliases = !a.useAliases
		case 'z':
			a.session.Zero()
		}
	}
	return false
}

// toggleSelected expands or collapses the AP of the row under the cursor.
// On a station row that is the station's AP.
func (a *App) toggleSelected() {
	if a.selected == "" {
		return
	}
	if b, ok := a.session.Store.Lookup(a.selected); ok {
		self := b.Self()
		self.Expanded = !self.Expanded
	}
}
