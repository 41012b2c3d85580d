//go:build tinygo

package main

import (
	"fmt"
	"io"
	"machine"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
	"tinygo.org/x/tinyterm/displays"

	"picoshell/shell"
)

var font = &proggy.TinySZ8pt7b

// serialPort is the subset of machine.Serialer the input loop needs.
type serialPort interface {
	Buffered() int
	ReadByte() (byte, error)
}

func main() {
	display := displays.Init()
	_ = display.SetRotation(drivers.Rotation0)

	term := tinyterm.NewTerminal(display)
	term.Configure(&tinyterm.Config{
		Font:              font,
		FontHeight:        10,
		FontOffset:        6,
		UseSoftwareScroll: displays.NeedsSoftwareScroll(),
	})

	cmds := append(shell.DefaultCommands(), shell.Command{
		Name: "ticks",
		Desc: "Show milliseconds since boot.",
		Run: func(s *shell.Shell, _ []string) int {
			fmt.Fprintf(s, "%d\r\n", time.Now().UnixMilli())
			return 0
		},
	})

	sh := shell.New(shell.Config{
		// Echo to the attached display and back over the wire.
		Output:   io.MultiWriter(term, machine.Serial),
		Prompt:   "pico> ",
		Banner:   "picoshell\r\nType `help`.\r\n",
		Commands: cmds,
		Tick:     func() int64 { return time.Now().UnixMilli() },
	})

	var console serialPort = machine.Serial
	for {
		if console.Buffered() == 0 {
			time.Sleep(time.Millisecond)
			continue
		}
		b, err := console.ReadByte()
		if err != nil {
			continue
		}
		sh.Handle(b)
		term.Display()
	}
}
