// Package shell implements an interactive line-editing and command-dispatch
// core for character-oriented terminals on small devices. It is driven one
// input byte at a time by an external transport and emits all terminal output
// through an injected byte sink. It performs no I/O of its own and never
// blocks.
package shell

import "io"

const (
	defaultLineCap         = 50
	defaultHistoryCap      = 5
	defaultPrompt          = "picoshell> "
	defaultDoubleTabWindow = 200 // milliseconds
)

// Config configures a Shell. The zero value of every field selects a default.
type Config struct {
	// Output receives every byte the shell emits: echo, redraws, command
	// output. nil discards output.
	Output io.Writer

	// Prompt is written after each accepted or aborted line.
	Prompt string

	// Banner is written once at construction, before the first prompt.
	Banner string

	// LineCap is the line buffer capacity in bytes. Input is refused once
	// the line reaches LineCap-1 bytes.
	LineCap int

	// HistoryCap is the number of history ring slots.
	HistoryCap int

	// Commands is the command descriptor table. Defaults to
	// DefaultCommands(). The slice is read, never written.
	Commands []Command

	// Tick returns a monotonic millisecond counter. It gates the
	// double-tab help shortcut; nil disables the shortcut.
	Tick func() int64

	// DoubleTabWindowMS is the double-tab detection window in
	// milliseconds.
	DoubleTabWindowMS int64

	// DisplayReturn prints each handler's numeric return value after it
	// runs.
	DisplayReturn bool
}

// Shell is one interactive session attached to one terminal. A Shell must be
// driven from a single caller at a time; it is not safe for concurrent use.
type Shell struct {
	out    io.Writer
	prompt string

	buf    []byte // buf[length] is always the 0 terminator
	length int
	cursor int

	history       []string
	historyCount  int // entries ever stored, saturating at cap
	historyFlag   int // next write slot
	historyOffset int // <= 0; 0 means no recall in progress

	mode inputMode

	tabFlag    bool
	activeTime int64
	tick       func() int64
	tabWindow  int64

	active bool

	commands []Command
	keys     []KeyBinding

	displayReturn bool
}

// New returns a Shell with zeroed edit state, writes the banner (if any) and
// the first prompt.
func New(cfg Config) *Shell {
	if cfg.Output == nil {
		cfg.Output = io.Discard
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	if cfg.LineCap <= 2 {
		cfg.LineCap = defaultLineCap
	}
	if cfg.HistoryCap <= 0 {
		cfg.HistoryCap = defaultHistoryCap
	}
	if cfg.Commands == nil {
		cfg.Commands = DefaultCommands()
	}
	if cfg.DoubleTabWindowMS <= 0 {
		cfg.DoubleTabWindowMS = defaultDoubleTabWindow
	}

	s := &Shell{
		out:           cfg.Output,
		prompt:        cfg.Prompt,
		buf:           make([]byte, cfg.LineCap),
		history:       make([]string, cfg.HistoryCap),
		commands:      cfg.Commands,
		tick:          cfg.Tick,
		tabWindow:     cfg.DoubleTabWindowMS,
		displayReturn: cfg.DisplayReturn,
	}
	if cfg.Banner != "" {
		s.writeString(cfg.Banner)
	}
	s.writePrompt()
	return s
}

// Handle consumes one raw input byte. Every state change and every output
// byte the shell produces happens inside this call.
func (s *Shell) Handle(b byte) {
	if s.mode == modeNormal {
		matched := false
		for _, kb := range s.keys {
			if kb.Key == b {
				if kb.Action != nil {
					kb.Action(s)
				}
				matched = true
			}
		}
		for _, kb := range defaultKeys {
			if kb.Key == b {
				if kb.Action != nil {
					kb.Action(s)
				}
				matched = true
			}
		}
		if !matched {
			s.insert(b)
		}
	} else {
		s.escape(b)
	}

	s.tabFlag = b == '\t'
	if s.tick != nil {
		s.activeTime = s.tick()
	}
}

// HandleBytes feeds each byte of p to Handle in order.
func (s *Shell) HandleBytes(p []byte) {
	for _, b := range p {
		s.Handle(b)
	}
}

// SetCommands replaces the command descriptor table. The table is externally
// owned and must outlive the shell.
func (s *Shell) SetCommands(cmds []Command) {
	s.commands = cmds
}

// SetKeyBindings replaces the per-instance key override table. Overrides run
// before the built-in defaults; both tables run for a byte they both match.
func (s *Shell) SetKeyBindings(keys []KeyBinding) {
	s.keys = keys
}

// Line returns the current in-progress line.
func (s *Shell) Line() string {
	return string(s.buf[:s.length])
}

// Cursor returns the insertion point within the current line.
func (s *Shell) Cursor() int {
	return s.cursor
}

// Prompt returns the configured prompt string.
func (s *Shell) Prompt() string {
	return s.prompt
}

// Active reports whether a dispatched command handler is currently executing
// on this shell.
func (s *Shell) Active() bool {
	return s.active
}

// Write sends p to the shell's output sink. It lets command handlers print
// through the shell with fmt.Fprintf and friends.
func (s *Shell) Write(p []byte) (int, error) {
	return s.out.Write(p)
}
