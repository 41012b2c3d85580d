package shell

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Handler executes one dispatched command. args[0] is the command name as
// typed. The return value is rendered after the run when Config.DisplayReturn
// is set.
type Handler func(s *Shell, args []string) int

// Command describes one dispatchable command. Descriptors are externally
// owned, read-only, and looked up in registration order: the first name match
// wins.
type Command struct {
	Name string
	Desc string
	Help string // optional long help shown by `help <name>`
	Run  Handler
}

// DefaultCommands returns the built-in descriptor table: help and cls.
func DefaultCommands() []Command {
	return []Command{
		{
			Name: "help",
			Desc: "Show the command list, or one command's help.",
			Help: "help [command]",
			Run: func(s *Shell, args []string) int {
				s.help(args)
				return 0
			},
		},
		{
			Name: "cls",
			Desc: "Clear the terminal screen.",
			Run: func(s *Shell, _ []string) int {
				s.writeString(ansiClearScreen)
				return 0
			},
		},
	}
}

// help lists every command, or one command's description plus long help.
// args includes the leading "help" token; nil lists everything.
func (s *Shell) help(args []string) {
	switch {
	case len(args) <= 1:
		s.writeString(textCommandList)
		for i := range s.commands {
			s.displayItem(i)
		}
	case len(args) == 2:
		for i := range s.commands {
			cmd := &s.commands[i]
			if cmd.Name != args[1] {
				continue
			}
			s.writeString("command help --")
			s.writeString(cmd.Name)
			s.writeString(":\r\n")
			s.writeString(cmd.Desc)
			s.writeString("\r\n")
			if cmd.Help != "" {
				s.writeString(cmd.Help)
				s.writeString("\r\n")
			}
			return
		}
		s.writeString(textCommandNone)
	}
}

// displayItem prints one help-list row: the name padded to a fixed column,
// then the description.
func (s *Shell) displayItem(i int) {
	cmd := &s.commands[i]

	pad := helpColumnWidth - runewidth.StringWidth(cmd.Name)
	if pad <= 0 {
		pad = helpColumnFloor
	}
	s.writeString(cmd.Name)
	s.writeString(strings.Repeat(" ", pad))
	s.writeString("--")
	s.writeString(cmd.Desc)
	s.writeString("\r\n")
}
