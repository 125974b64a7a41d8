package session

import (
	"context"
	"dungeon-crawl/internal/game"
	"dungeon-crawl/internal/render"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// MaxCommandLength is the most runes the command line accepts.
const MaxCommandLength = 60

// Run is the per-session loop. It reads input, applies commands and redraws
// until the player quits, the screen closes or ctx ends.
func (s *Session) Run(ctx context.Context) {
	eventCh := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := s.Screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	s.AddMessage(fmt.Sprintf("Welcome, %s. Press ? for help.", s.Name))
	s.redraw(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-s.notices:
			if !ok {
				return
			}
			if s.notice(n) {
				s.redraw(ctx)
			}
		case ev, ok := <-eventCh:
			if !ok {
				return // screen closed / disconnected
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.Screen.Sync()
				s.Renderer.Resize()
			case *tcell.EventKey:
				in, prompt := keyToInput(ev)
				if prompt {
					line, ok := s.runPrompt(ctx, eventCh)
					if !ok {
						break
					}
					var err error
					if in, err = game.ParseInput(line); err != nil {
						s.AddMessage(err.Error())
						break
					}
				}
				if in.Action == game.ActionQuit {
					if s.confirmQuit(eventCh) {
						return
					}
					break
				}
				s.dispatch(ctx, in, eventCh)
			}
			s.redraw(ctx)
		}
	}
}

// dispatch runs a parsed input: commands go to the handler, queries open an
// overlay.
func (s *Session) dispatch(ctx context.Context, in game.Input, eventCh <-chan tcell.Event) {
	switch in.Action {
	case game.ActionNone, game.ActionLook:
		return
	case game.ActionHelp:
		s.showBox(" Controls ", helpLines, eventCh)
		return
	}
	if !in.Action.IsCommand() {
		lines, err := s.query(ctx, in.Action)
		if err != nil {
			s.fail(err)
			return
		}
		s.showBox(" "+titles[in.Action]+" ", append(lines, "", "  [any key to close]"), eventCh)
		return
	}
	s.apply(ctx, in)
}

// apply resolves in against the player's crawls and hands it to the handler.
func (s *Session) apply(ctx context.Context, in game.Input) {
	cmd, ok, err := s.handler.Resolve(ctx, s.Name, in)
	if err != nil {
		s.fail(err)
		return
	}
	if !ok {
		s.AddMessage("Nothing to do that in. Press n to start a crawl.")
		return
	}
	out, err := s.handler.Handle(ctx, s.Name, cmd)
	if err != nil {
		s.fail(err)
		return
	}
	for _, m := range out.Messages {
		s.AddMessage(m)
	}
	if out.Status == game.Cancel && out.Reason != "blocked" {
		s.AddMessage("✗ " + out.Reason)
	}
}

func (s *Session) fail(err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	s.logger.Error("session command failed", "error", err)
	s.AddMessage("Something went wrong. Try again.")
}

// redraw renders the player's party crawl, else the solo crawl, else the
// title screen.
func (s *Session) redraw(ctx context.Context) {
	view, ok, err := s.view(ctx)
	if err != nil {
		s.fail(err)
	}
	if ok {
		s.Renderer.DrawFrame(view, s.Messages)
	} else {
		s.drawTitle()
	}
	s.Screen.Show()
}

func (s *Session) view(ctx context.Context) (render.View, bool, error) {
	p, ok, err := s.handler.Party(ctx, s.Name)
	if err != nil {
		return render.View{}, false, err
	}
	if ok {
		return render.PartyView(s.Name, &p), true, nil
	}
	d, ok, err := s.handler.Dungeon(ctx, s.Name)
	if err != nil || !ok {
		return render.View{}, false, err
	}
	return render.SoloView(s.Name, &d), true, nil
}

func (s *Session) drawTitle() {
	s.Screen.Clear()
	sw, sh := s.Screen.Size()
	title := "🏰 Dungeon Crawl 🏰"
	sub := "[n] new crawl   [:] command   [?] help   [q] quit"
	y := sh / 3
	s.Renderer.DrawText(max((sw-len([]rune(title))-2)/2, 0), y, title, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	s.Renderer.DrawText(max((sw-len(sub))/2, 0), y+2, sub, tcell.StyleDefault.Foreground(tcell.ColorGray))
	start := max(len(s.Messages)-(sh-y-5), 0)
	for i, msg := range s.Messages[start:] {
		s.Renderer.DrawText(0, y+4+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

// runPrompt reads one command line on the bottom row. Returns the typed text
// and true, or empty and false if cancelled.
func (s *Session) runPrompt(ctx context.Context, eventCh <-chan tcell.Event) (string, bool) {
	var buf []rune
	for {
		s.redraw(ctx)
		_, sh := s.Screen.Size()
		s.Renderer.DrawText(0, sh-1, ":"+string(buf)+"_", tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
		s.Screen.Show()

		ev, ok := <-eventCh
		if !ok {
			return "", false
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.Screen.Sync()
			s.Renderer.Resize()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				if len(buf) == 0 {
					return "", false
				}
				return string(buf), true
			case tcell.KeyEscape:
				return "", false
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(buf) > 0 {
					buf = buf[:len(buf)-1]
				}
			case tcell.KeyRune:
				if len(buf) < MaxCommandLength {
					buf = append(buf, ev.Rune())
				}
			}
		}
	}
}

// drawBox draws a bordered box of width×height with its top left at (x0, y0).
func (s *Session) drawBox(x0, y0, width, height int, title string) {
	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for col := x0; col < x0+width; col++ {
		s.Screen.SetContent(col, y0, '─', nil, border)
		s.Screen.SetContent(col, y0+height-1, '─', nil, border)
	}
	for row := y0; row < y0+height; row++ {
		s.Screen.SetContent(x0, row, '│', nil, border)
		s.Screen.SetContent(x0+width-1, row, '│', nil, border)
	}
	s.Screen.SetContent(x0, y0, '┌', nil, border)
	s.Screen.SetContent(x0+width-1, y0, '┐', nil, border)
	s.Screen.SetContent(x0, y0+height-1, '└', nil, border)
	s.Screen.SetContent(x0+width-1, y0+height-1, '┘', nil, border)
	if title != "" {
		hx := x0 + (width-len([]rune(title)))/2
		s.Renderer.DrawText(hx, y0, title, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}
}

// showBox shows lines in a centred box. Any key dismisses it.
func (s *Session) showBox(title string, lines []string, eventCh <-chan tcell.Event) {
	width := len([]rune(title)) + 4
	for _, l := range lines {
		width = max(width, len([]rune(l))+6)
	}
	body := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	for {
		s.Screen.Clear()
		sw, sh := s.Screen.Size()
		height := len(lines) + 3
		x0, y0 := max((sw-width)/2, 0), max((sh-height)/2, 0)
		s.drawBox(x0, y0, width, height, title)
		for i, line := range lines {
			s.Renderer.DrawText(x0+2, y0+1+i, line, body)
		}
		s.Screen.Show()

		ev, ok := <-eventCh
		if !ok {
			return
		}
		switch ev.(type) {
		case *tcell.EventResize:
			s.Screen.Sync()
			s.Renderer.Resize()
		case *tcell.EventKey:
			return
		}
	}
}

// confirmQuit shows a "Really disconnect? (y/n)" prompt. Returns true if confirmed.
func (s *Session) confirmQuit(eventCh <-chan tcell.Event) bool {
	prompt := " Really disconnect? (y/n) "
	width := len([]rune(prompt)) + 4
	for {
		s.Screen.Clear()
		sw, sh := s.Screen.Size()
		x0, y0 := max((sw-width)/2, 0), max((sh-3)/2, 0)
		s.drawBox(x0, y0, width, 3, "")
		s.Renderer.DrawText(x0+2, y0+1, prompt, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
		s.Screen.Show()

		ev, ok := <-eventCh
		if !ok {
			return true // disconnected
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.Screen.Sync()
			s.Renderer.Resize()
		case *tcell.EventKey:
			return ev.Rune() == 'y' || ev.Rune() == 'Y'
		}
	}
}
