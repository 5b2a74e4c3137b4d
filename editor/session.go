package editor

import (
	"sync"

	"github.com/avercoe/codedeck/highlight"
	"github.com/avercoe/codedeck/tree"
)

// Session owns the open tabs, the active tab id, and the authoritative text
// surface state. It is pure state management with no UI dependency; view
// glue drives it through the exported methods and observes it through
// OnFrame and the query surface.
//
// All mutations serialize through one mutex, so the active tab's content is
// only ever written by the recompute step.
type Session struct {
	mu       sync.Mutex
	tabs     []*Tab // open order
	activeID string // "" when no tabs are open

	// Text surface state. text is the authoritative source; the active
	// tab's Content is a mirror refreshed on every recompute.
	text       string
	caret      int
	scrollTop  int
	scrollLeft int

	frame   Frame
	sched   Scheduler
	deferFn func(func())
	onFrame func(Frame)
	pending string // auto-indent captured before a line break lands
}

// Option configures a Session.
type Option func(*Session)

// WithScheduler replaces the per-frame coalescing scheduler. Tests use a
// synchronous one.
func WithScheduler(s Scheduler) Option {
	return func(sess *Session) { sess.sched = s }
}

// WithDeferFunc replaces the zero-delay deferred-callback primitive used by
// the auto-indent step.
func WithDeferFunc(fn func(func())) Option {
	return func(sess *Session) { sess.deferFn = fn }
}

// NewSession creates an empty session in the valid zero-tabs state.
func NewSession(opts ...Option) *Session {
	s := &Session{
		sched:   NewCoalescer(DefaultFrameInterval),
		deferFn: deferTick,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.frame = Frame{Lines: 1, Status: NoFileStatus}
	return s
}

// OnFrame registers the callback invoked after every recompute with the new
// frame. It is called without the session lock held.
func (s *Session) OnFrame(fn func(Frame)) {
	s.mu.Lock()
	s.onFrame = fn
	s.mu.Unlock()
}

// OpenFile opens a file node as a tab. If a tab with the node's name is
// already open it becomes active instead of duplicating; otherwise a new tab
// is created with the node's content copied and its language inferred from
// the name when the node does not carry one. Folders and nil nodes are
// no-ops. The text surface reloads from the new active tab immediately.
func (s *Session) OpenFile(node *tree.Node) *Tab {
	if node == nil || node.Kind != tree.File {
		return nil
	}

	s.mu.Lock()
	for _, t := range s.tabs {
		if t.Name == node.Name {
			s.activeID = t.ID
			s.loadSurface(t)
			frame, cb := s.recomputeLocked()
			s.mu.Unlock()
			notify(cb, frame)
			return t
		}
	}

	t := newTab(node.Name, node.Language, node.Content)
	s.tabs = append(s.tabs, t)
	s.activeID = t.ID
	s.loadSurface(t)
	frame, cb := s.recomputeLocked()
	s.mu.Unlock()
	notify(cb, frame)
	return t
}

// CloseTab removes the tab with the given id. Closing an unknown id is a
// no-op. If the closed tab was active, the tab immediately preceding it in
// open order becomes active, else the new first tab, else the session enters
// the zero-tabs state with a cleared surface.
func (s *Session) CloseTab(id string) {
	s.mu.Lock()
	idx := -1
	for i, t := range s.tabs {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	wasActive := s.tabs[idx].ID == s.activeID
	s.tabs = append(s.tabs[:idx], s.tabs[idx+1:]...)

	if wasActive {
		switch {
		case len(s.tabs) == 0:
			s.activeID = ""
			s.clearSurface()
		case idx > 0:
			s.activeID = s.tabs[idx-1].ID
			s.loadSurface(s.tabs[idx-1])
		default:
			s.activeID = s.tabs[0].ID
			s.loadSurface(s.tabs[0])
		}
	}

	frame, cb := s.recomputeLocked()
	s.mu.Unlock()
	notify(cb, frame)
}

// SwitchTab makes the tab with the given id active and reloads the text
// surface from its stored content. Unknown ids are no-ops.
func (s *Session) SwitchTab(id string) {
	s.mu.Lock()
	for _, t := range s.tabs {
		if t.ID == id {
			s.activeID = t.ID
			s.loadSurface(t)
			frame, cb := s.recomputeLocked()
			s.mu.Unlock()
			notify(cb, frame)
			return
		}
	}
	s.mu.Unlock()
}

// HandleInput replaces the surface text and caret after an input event and
// schedules a coalesced recompute.
func (s *Session) HandleInput(text string, caret int) {
	s.mu.Lock()
	s.text = text
	s.caret = caret
	s.mu.Unlock()
	s.scheduleRecompute()
}

// HandleScroll records the surface scroll offsets; the next recompute copies
// them to the other visual layers.
func (s *Session) HandleScroll(top, left int) {
	s.mu.Lock()
	s.scrollTop = top
	s.scrollLeft = left
	s.mu.Unlock()
	s.scheduleRecompute()
}

// HandleResize schedules a recompute after a layout-affecting event.
func (s *Session) HandleResize() {
	s.scheduleRecompute()
}

// HandleKey intercepts structural keys before native text-surface handling.
// It reports whether the key was consumed (the caller should suppress the
// default insertion). "Tab" inserts two spaces at the selection; "Enter"
// breaks the line and defers the auto-indent insertion one tick so it lands
// after the break, mirroring how a native surface would sequence it.
func (s *Session) HandleKey(key string, selStart, selEnd int) bool {
	switch key {
	case "Tab":
		s.mu.Lock()
		if s.activeID == "" {
			s.mu.Unlock()
			return false
		}
		s.text, s.caret = InsertIndent(s.text, selStart, selEnd)
		s.mu.Unlock()
		s.scheduleRecompute()
		return true

	case "Enter":
		s.mu.Lock()
		if s.activeID == "" {
			s.mu.Unlock()
			return false
		}
		var indent string
		s.text, s.caret, indent = BreakLine(s.text, selStart, selEnd)
		s.pending = indent
		s.mu.Unlock()
		s.deferFn(s.applyAutoIndent)
		s.scheduleRecompute()
		return true
	}
	return false
}

// applyAutoIndent runs one tick after a line break and inserts the captured
// leading whitespace at the caret.
func (s *Session) applyAutoIndent() {
	s.mu.Lock()
	indent := s.pending
	s.pending = ""
	if indent == "" || s.activeID == "" {
		s.mu.Unlock()
		return
	}
	s.text, s.caret = InsertAt(s.text, s.caret, indent)
	s.mu.Unlock()
	s.scheduleRecompute()
}

// Recompute schedules a coalesced recompute; settings toggles and other
// external layout changes call this.
func (s *Session) Recompute() {
	s.scheduleRecompute()
}

func (s *Session) scheduleRecompute() {
	s.sched.Schedule(s.recompute)
}

func (s *Session) recompute() {
	s.mu.Lock()
	frame, cb := s.recomputeLocked()
	s.mu.Unlock()
	notify(cb, frame)
}

// recomputeLocked runs the pipeline: normalize tabs, mirror the text into
// the active tab, highlight, count gutter lines, derive the caret position,
// and copy the scroll offsets into the frame.
func (s *Session) recomputeLocked() (Frame, func(Frame)) {
	active := s.activeTabLocked()
	if active == nil {
		s.frame = Frame{Lines: 1, Status: NoFileStatus}
		return s.frame, s.onFrame
	}

	s.text = NormalizeTabs(s.text)
	if s.caret > len(s.text) {
		s.caret = len(s.text)
	}
	active.Content = s.text

	markup := highlight.Highlight(s.text, active.Language)
	if s.text == "" {
		markup = EmptyMarkup
	}

	s.frame = Frame{
		Markup:     markup,
		Lines:      LineCount(s.text),
		Caret:      CaretAt(s.text, s.caret),
		ScrollTop:  s.scrollTop,
		ScrollLeft: s.scrollLeft,
		Status:     LanguageLabel(active.Language),
	}
	return s.frame, s.onFrame
}

func notify(cb func(Frame), frame Frame) {
	if cb != nil {
		cb(frame)
	}
}

// loadSurface reloads the text surface from a tab. Caller holds the lock.
func (s *Session) loadSurface(t *Tab) {
	s.text = t.Content
	s.caret = 0
	s.scrollTop = 0
	s.scrollLeft = 0
}

// clearSurface empties the surface for the zero-tabs state. Caller holds
// the lock.
func (s *Session) clearSurface() {
	s.text = ""
	s.caret = 0
	s.scrollTop = 0
	s.scrollLeft = 0
}

func (s *Session) activeTabLocked() *Tab {
	if s.activeID == "" {
		return nil
	}
	for _, t := range s.tabs {
		if t.ID == s.activeID {
			return t
		}
	}
	return nil
}

// ActiveTab returns a copy of the active tab, or false if no tab is open.
func (s *Session) ActiveTab() (Tab, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.activeTabLocked()
	if t == nil {
		return Tab{}, false
	}
	return *t, true
}

// Tabs returns copies of the open tabs in open order.
func (s *Session) Tabs() []Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Tab, len(s.tabs))
	for i, t := range s.tabs {
		out[i] = *t
	}
	return out
}

// Frame returns the most recently computed frame.
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// Text returns the current authoritative surface text.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// CaretOffset returns the current caret byte offset.
func (s *Session) CaretOffset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.caret
}

// GutterLineCount returns the line count from the last frame.
func (s *Session) GutterLineCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame.Lines
}
