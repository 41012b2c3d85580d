//go:build !tinygo

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"picoshell/shell"
)

func main() {
	var prompt string
	var showReturn bool
	flag.StringVar(&prompt, "prompt", "picoshell> ", "Prompt string.")
	flag.BoolVar(&showReturn, "show-return", false, "Print each command's return value.")
	flag.Parse()

	if err := run(prompt, showReturn); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(prompt string, showReturn bool) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	start := time.Now()
	done := false

	cmds := append(shell.DefaultCommands(),
		shell.Command{
			Name: "echo",
			Desc: "Print arguments.",
			Run: func(s *shell.Shell, args []string) int {
				fmt.Fprintf(s, "%s\r\n", strings.Join(args[1:], " "))
				return 0
			},
		},
		shell.Command{
			Name: "uptime",
			Desc: "Show time since the shell started.",
			Run: func(s *shell.Shell, _ []string) int {
				fmt.Fprintf(s, "%s\r\n", time.Since(start).Round(time.Second))
				return 0
			},
		},
		shell.Command{
			Name: "exit",
			Desc: "Leave the shell.",
			Run: func(*shell.Shell, []string) int {
				done = true
				return 0
			},
		},
	)

	sh := shell.New(shell.Config{
		Output:        os.Stdout,
		Prompt:        prompt,
		Banner:        "picoshell\r\nType `help`.\r\n",
		Commands:      cmds,
		Tick:          func() int64 { return time.Now().UnixMilli() },
		DisplayReturn: showReturn,
	})

	// Ctrl-L: clear the screen and redraw the line in progress.
	sh.SetKeyBindings([]shell.KeyBinding{{
		Key: 0x0c,
		Action: func(s *shell.Shell) {
			_, _ = io.WriteString(s, "\x1b[2J\x1b[1H"+s.Prompt()+s.Line())
		},
	}})

	reg := shell.NewRegistry(1)
	if err := reg.Add(sh); err != nil {
		return err
	}

	buf := make([]byte, 1)
	for !done {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		if n == 0 {
			continue
		}
		if buf[0] == 0x03 { // Ctrl-C
			break
		}
		sh.Handle(buf[0])
	}
	fmt.Print("\r\n")
	return nil
}
