package shell

import "io"

const (
	textCommandList = "\r\nCOMMAND LIST:\r\n\r\n"
	textCommandNone = "Command not found\r\n"
	textLineTooLong = "\r\nWarning: command line is too long\r\n"
	ansiClearScreen = "\x1b[2J\x1b[1H"
	helpColumnWidth = 22
	helpColumnFloor = 4
	helpPrefix      = "help "
)

// All output is best-effort; a failing sink degrades to a silent terminal,
// never to an error surfaced from the core.

func (s *Shell) writeString(str string) {
	_, _ = io.WriteString(s.out, str)
}

func (s *Shell) writeBytes(p []byte) {
	_, _ = s.out.Write(p)
}

func (s *Shell) writeByte(b byte) {
	_, _ = s.out.Write([]byte{b})
}

func (s *Shell) writePrompt() {
	s.writeString("\r\n")
	s.writeString(s.prompt)
}

// backspaceErase rubs out n characters left of the terminal cursor.
func (s *Shell) backspaceErase(n int) {
	for ; n > 0; n-- {
		s.writeString("\b \b")
	}
}
