package shell

// insert places b at the cursor. Appending at end-of-line echoes the byte;
// inserting mid-line shifts the tail right and redraws it, then backspaces
// the terminal cursor home. A full buffer refuses the byte with a warning.
// The zero byte is ignored.
func (s *Shell) insert(b byte) {
	if b == 0 {
		return
	}
	if s.length >= len(s.buf)-1 {
		s.writeString(textLineTooLong)
		s.writePrompt()
		s.writeBytes(s.buf[:s.length])
		s.cursor = s.length
		return
	}

	if s.cursor == s.length {
		s.buf[s.length] = b
		s.length++
		s.cursor++
		s.buf[s.length] = 0
		s.writeByte(b)
		return
	}

	copy(s.buf[s.cursor+1:s.length+1], s.buf[s.cursor:s.length])
	s.buf[s.cursor] = b
	s.cursor++
	s.length++
	s.buf[s.length] = 0

	s.writeBytes(s.buf[s.cursor-1 : s.length])
	for i := s.length - s.cursor; i > 0; i-- {
		s.writeByte('\b')
	}
}

// backspace deletes the byte left of the cursor, mirroring insert: at
// end-of-line a single rub-out, mid-line a left shift plus tail redraw with a
// trailing space to erase the stale last character.
func (s *Shell) backspace() {
	if s.length == 0 {
		return
	}

	if s.cursor == s.length {
		s.length--
		s.cursor--
		s.buf[s.length] = 0
		s.backspaceErase(1)
		return
	}

	if s.cursor == 0 {
		return
	}

	copy(s.buf[s.cursor-1:s.length-1], s.buf[s.cursor:s.length])
	s.length--
	s.cursor--
	s.buf[s.length] = 0

	s.writeByte('\b')
	s.writeBytes(s.buf[s.cursor:s.length])
	s.writeByte(' ')
	for i := s.length - s.cursor + 1; i > 0; i-- {
		s.writeByte('\b')
	}
}

// clearLine erases the visible line from the terminal without touching the
// buffer: the characters right of the cursor are overwritten with spaces,
// then the whole line is rubbed out. Callers redraw from scratch afterwards.
func (s *Shell) clearLine() {
	for i := s.length - s.cursor; i > 0; i-- {
		s.writeByte(' ')
	}
	s.backspaceErase(s.length)
}

// setLine replaces the buffer with line, cursor at end. line is truncated to
// the buffer capacity.
func (s *Shell) setLine(line string) {
	n := len(line)
	if n > len(s.buf)-1 {
		n = len(s.buf) - 1
	}
	copy(s.buf, line[:n])
	s.length = n
	s.cursor = n
	s.buf[s.length] = 0
}
