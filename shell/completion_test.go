package shell

import (
	"strings"
	"testing"
)

func testCommands() []Command {
	nop := func(*Shell, []string) int { return 0 }
	return []Command{
		{Name: "status", Desc: "Show device status.", Run: nop},
		{Name: "stop", Desc: "Stop the worker.", Run: nop},
		{Name: "start", Desc: "Start the worker.", Help: "start [now]", Run: nop},
		{Name: "reboot", Desc: "Reboot the device.", Run: nop},
	}
}

func TestTabUniqueMatchCompletes(t *testing.T) {
	s, _ := newTestShell(t, Config{Commands: testCommands()})

	s.HandleBytes([]byte("reb"))
	s.Handle(KeyTab)

	if got := s.Line(); got != "reboot" {
		t.Fatalf("line=%q, want %q", got, "reboot")
	}
	if s.Cursor() != len("reboot") {
		t.Fatalf("cursor=%d, want %d", s.Cursor(), len("reboot"))
	}
}

func TestTabAlreadyCompleteKeepsLine(t *testing.T) {
	s, _ := newTestShell(t, Config{Commands: testCommands()})

	s.HandleBytes([]byte("reboot"))
	s.Handle(KeyTab)

	if got := s.Line(); got != "reboot" {
		t.Fatalf("line=%q, want %q", got, "reboot")
	}
}

func TestTabNoMatchIsNoOp(t *testing.T) {
	s, out := newTestShell(t, Config{Commands: testCommands()})

	s.HandleBytes([]byte("zz"))
	out.Reset()
	s.Handle(KeyTab)

	if got := s.Line(); got != "zz" {
		t.Fatalf("line=%q, want %q", got, "zz")
	}
	if out.Len() != 0 {
		t.Fatalf("emitted %q, want nothing", out.String())
	}
}

func TestTabMultipleMatchesListsAndFillsCommonPrefix(t *testing.T) {
	s, out := newTestShell(t, Config{Commands: testCommands()})

	s.HandleBytes([]byte("st"))
	out.Reset()
	s.Handle(KeyTab)

	listing := out.String()
	for _, name := range []string{"status", "stop", "start"} {
		if !strings.Contains(listing, name) {
			t.Fatalf("listing %q misses %q", listing, name)
		}
	}
	if strings.Contains(listing, "reboot") {
		t.Fatalf("listing %q includes non-match", listing)
	}
	if !strings.Contains(listing, "--") {
		t.Fatalf("listing %q misses the description separator", listing)
	}

	if got := s.Line(); got != "st" {
		t.Fatalf("line=%q, want %q", got, "st")
	}
	if s.Cursor() != 2 {
		t.Fatalf("cursor=%d, want 2", s.Cursor())
	}
}

func TestTabPartialFillExtendsToCommonPrefix(t *testing.T) {
	cmds := []Command{
		{Name: "netstat", Desc: "Show sockets.", Run: func(*Shell, []string) int { return 0 }},
		{Name: "netcfg", Desc: "Configure the NIC.", Run: func(*Shell, []string) int { return 0 }},
	}
	s, _ := newTestShell(t, Config{Commands: cmds})

	s.HandleBytes([]byte("n"))
	s.Handle(KeyTab)

	if got := s.Line(); got != "net" {
		t.Fatalf("line=%q, want %q", got, "net")
	}
}

func TestTabEmptyBufferListsAllCommands(t *testing.T) {
	s, out := newTestShell(t, Config{Commands: testCommands()})

	s.Handle(KeyTab)

	listing := out.String()
	if !strings.Contains(listing, "COMMAND LIST") {
		t.Fatalf("listing %q misses heading", listing)
	}
	for _, name := range []string{"status", "stop", "start", "reboot"} {
		if !strings.Contains(listing, name) {
			t.Fatalf("listing %q misses %q", listing, name)
		}
	}
}

func TestDoubleTabPrependsHelp(t *testing.T) {
	now := int64(1000)
	s, _ := newTestShell(t, Config{
		Commands: testCommands(),
		Tick:     func() int64 { return now },
	})

	s.HandleBytes([]byte("reb"))
	s.Handle(KeyTab)
	now += 50 // within the window
	s.Handle(KeyTab)

	if got := s.Line(); got != "help reboot" {
		t.Fatalf("line=%q, want %q", got, "help reboot")
	}
	if s.Cursor() != len("help reboot") {
		t.Fatalf("cursor=%d, want %d", s.Cursor(), len("help reboot"))
	}
}

func TestDoubleTabOutsideWindowIgnored(t *testing.T) {
	now := int64(1000)
	s, _ := newTestShell(t, Config{
		Commands:          testCommands(),
		Tick:              func() int64 { return now },
		DoubleTabWindowMS: 200,
	})

	s.HandleBytes([]byte("reb"))
	s.Handle(KeyTab)
	now += 500
	s.Handle(KeyTab)

	if got := s.Line(); got != "reboot" {
		t.Fatalf("line=%q, want %q", got, "reboot")
	}
}

func TestDoubleTabWithoutTickSourceDisabled(t *testing.T) {
	s, _ := newTestShell(t, Config{Commands: testCommands()})

	s.HandleBytes([]byte("reb"))
	s.Handle(KeyTab)
	s.Handle(KeyTab)

	if got := s.Line(); got != "reboot" {
		t.Fatalf("line=%q, want %q", got, "reboot")
	}
}

func TestDoubleTabSkippedWhenPrefixDoesNotFit(t *testing.T) {
	now := int64(0)
	s, _ := newTestShell(t, Config{
		Commands: testCommands(),
		Tick:     func() int64 { return now },
		LineCap:  8,
	})

	s.HandleBytes([]byte("reb"))
	s.Handle(KeyTab)
	now += 10
	s.Handle(KeyTab)

	// "help reboot" does not fit in an 8-byte buffer.
	if got := s.Line(); got != "reboot" {
		t.Fatalf("line=%q, want %q", got, "reboot")
	}
	s.checkInvariants(t)
}
