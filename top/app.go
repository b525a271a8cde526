// Copyright (c) 2016, David Url
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package top runs the interactive wifitop screen.
//
// All session state is owned by the goroutine calling App.Run: frames are
// aggregated, keys are handled and the screen is painted there. Stream
// readers run in their own goroutines and only hand data over.
package top

import (
	"bytes"
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/alexdwagner/wifitop/display"
	"github.com/alexdwagner/wifitop/tracker"
)

// DefaultRefresh is the redraw interval and the longest the loop sleeps.
const DefaultRefresh = 100 * time.Millisecond

// Names resolves and persists display names.
type Names interface {
	display.Namer
	Load() error
}

// An App is the interactive table.
type App struct {
	screen  tcell.Screen
	session *tracker.Session
	names   Names
	sources []Source
	refresh time.Duration
	now     func() time.Time

	showMcast  bool
	useAliases bool
	x, y       int
	cols, rows int
	table      display.Table
	selected   string // AP of the row under the cursor
	dirty      bool
	lastDraw   time.Time
	aliasErr   string
	stderr     bytes.Buffer
}

// New creates an App painting session on screen. names may be nil.
func New(screen tcell.Screen, session *tracker.Session, names Names, sources ...Source) *App {
	return &App{
		screen:     screen,
		session:    session,
		names:      names,
		sources:    sources,
		refresh:    DefaultRefresh,
		now:        time.Now,
		useAliases: true,
	}
}

// SetRefresh changes the redraw interval.
func (a *App) SetRefresh(d time.Duration) {
	if d > 0 {
		a.refresh = d
	}
}

// SetClock replaces the clock used for highlighting and redraw timing.
func (a *App) SetClock(now func() time.Time) {
	a.now = now
}

// Run shows the table until the user quits, ctx is done, or every stream
// has ended. It returns everything the sources wrote to their logs.
func (a *App) Run(ctx context.Context) []byte {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	done := make(chan struct{})
	defer close(done)
	streams := make(chan activity, 256)
	live := start(a.sources, streams, done)

	a.dirty = true
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
			} else if a.handleEvent(ev) {
				return a.stderr.Bytes()
			}
		default:
		}

		if a.dirty || a.now().Sub(a.lastDraw) >= a.refresh {
			a.draw()
		}
		if live == 0 {
			log.Printf("top: all streams ended")
			return a.stderr.Bytes()
		}

		timer := time.NewTimer(a.refresh)
		select {
		case <-ctx.Done():
			timer.Stop()
			return a.stderr.Bytes()
		case ev, ok := <-events:
			if !ok {
				events = nil
			} else if a.handleEvent(ev) {
				timer.Stop()
				return a.stderr.Bytes()
			}
		case act := <-streams:
			if a.apply(act) {
				live--
			}
		case <-timer.C:
		}
		timer.Stop()
	}
}

// apply hands stream activity to the session and reports whether the stream ended.
func (a *App) apply(act activity) bool {
	switch {
	case act.eof:
		log.Printf("top: stream %d ended", act.stream)
		a.dirty = true
		return true
	case act.frame != nil:
		a.session.Handle(*act.frame)
	default:
		a.stderr.Write(act.text)
	}
	return false
}

// draw reloads aliases, recomposes the table and moves the cursor back
// into the painted area.
func (a *App) draw() {
	if a.names != nil {
		a.loadNames()
	}
	a.cols, a.rows = a.screen.Size()
	now := a.now()
	a.table = display.Compose(a.session, a.names, display.Options{
		ShowMcast:  a.showMcast,
		UseAliases: a.useAliases,
		Rows:       a.rows,
		Now:        now,
	})
	display.Paint(a.screen, a.table)

	a.y = max(min(a.y, a.rows-1, a.table.MaxRow), 0)
	a.x = max(min(a.x, a.cols-1), 0)
	a.selected = ""
	for _, r := range a.table.Rows {
		if r.Line == a.y {
			a.selected = r.AP
			break
		}
	}
	a.screen.ShowCursor(a.x, a.y)
	a.screen.Show()
	a.lastDraw = now
	a.dirty = false
}

// loadNames logs alias failures once per distinct error.
func (a *App) loadNames() {
	err := a.names.Load()
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if msg != a.aliasErr && msg != "" {
		log.Printf("top: aliases: %s", msg)
	}
	a.aliasErr = msg
}
