package shell

// inputMode is the escape-sequence recognizer state. The recognizer is a
// strict two-byte lookahead: ESC then '[' then one final byte. Numeric CSI
// parameters are not supported, so only bare arrow keys are recognized.
type inputMode uint8

const (
	modeNormal inputMode = iota
	modeEscape           // ESC seen
	modeCSI              // ESC [ seen
)

// escStart is the key action bound to ESC.
func (s *Shell) escStart() {
	s.mode = modeEscape
}

// escape consumes one byte of an escape sequence. Unrecognized sequences are
// abandoned silently.
func (s *Shell) escape(b byte) {
	switch s.mode {
	case modeEscape:
		if b == '[' {
			s.mode = modeCSI
		} else {
			s.mode = modeNormal
		}

	case modeCSI:
		switch b {
		case 'A':
			s.historyRecall(historyOlder)
		case 'B':
			s.historyRecall(historyNewer)
		case 'C':
			if s.cursor < s.length {
				// Re-echo the character the cursor moves over.
				s.writeByte(s.buf[s.cursor])
				s.cursor++
			}
		case 'D':
			if s.cursor > 0 {
				s.writeByte('\b')
				s.cursor--
			}
		}
		s.mode = modeNormal
	}
}
