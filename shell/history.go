package shell

type historyDir uint8

const (
	historyOlder historyDir = iota
	historyNewer
)

// ringIndex reduces i modulo n into [0, n). It accepts negative i.
func ringIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// historyCommit stores the current line in the ring and resets recall.
// Only an immediate duplicate of the most recent entry is suppressed.
func (s *Shell) historyCommit() {
	s.historyOffset = 0

	line := string(s.buf[:s.length])
	if line == "" {
		return
	}
	if s.historyCount > 0 && s.history[ringIndex(s.historyFlag-1, len(s.history))] == line {
		return
	}

	s.history[s.historyFlag] = line
	s.historyFlag = ringIndex(s.historyFlag+1, len(s.history))
	if s.historyCount < len(s.history) {
		s.historyCount++
	}
}

// historyRecall walks the ring by one step. Offset 0 is "composing a new
// line": stepping newer past it blanks nothing and stays put, stepping older
// is clamped at the oldest stored entry (which redraws in place).
func (s *Shell) historyRecall(dir historyDir) {
	depth := s.historyCount
	if s.historyFlag > depth {
		depth = s.historyFlag
	}

	switch dir {
	case historyOlder:
		if s.historyOffset <= -depth {
			s.historyOffset = -depth
		} else {
			s.historyOffset--
		}
	case historyNewer:
		s.historyOffset++
		if s.historyOffset > 0 {
			s.historyOffset = 0
			return
		}
	default:
		return
	}

	s.clearLine()
	if s.historyOffset == 0 {
		s.length = 0
		s.cursor = 0
		s.buf[0] = 0
		return
	}

	line := s.history[ringIndex(s.historyFlag+s.historyOffset, len(s.history))]
	s.setLine(line)
	if s.length == 0 {
		return
	}
	s.writeBytes(s.buf[:s.length])
}
