package shell

import "strings"

// tab completes the buffer against the command table. A unique match fills
// the whole name; several matches are listed as help rows and the buffer is
// filled with their longest common prefix. With an empty buffer it lists
// every command instead.
func (s *Shell) tab() {
	if s.length == 0 {
		s.active = true
		s.help(nil)
		s.active = false
		s.writePrompt()
		return
	}

	prefix := string(s.buf[:s.length])
	var matches []int
	for i := range s.commands {
		if strings.HasPrefix(s.commands[i].Name, prefix) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return
	}

	if len(matches) == 1 {
		s.clearLine()
		s.setLine(s.commands[matches[0]].Name)
		s.writeBytes(s.buf[:s.length])
		s.doubleTab()
		return
	}

	common := s.commands[matches[0]].Name
	s.writeString("\r\n")
	for _, i := range matches {
		s.displayItem(i)
		common = commonPrefix(common, s.commands[i].Name)
	}
	s.writePrompt()
	s.setLine(common)
	s.writeBytes(s.buf[:s.length])
}

// doubleTab prepends "help " to a just-completed command when the previous
// byte was also a tab inside the configured window, as a shortcut to that
// command's long help. Without a tick source the shortcut is disabled.
func (s *Shell) doubleTab() {
	if s.tick == nil || !s.tabFlag {
		return
	}
	if s.tick()-s.activeTime >= s.tabWindow {
		return
	}
	if s.length+len(helpPrefix) >= len(s.buf)-1 {
		return
	}

	s.clearLine()
	copy(s.buf[len(helpPrefix):s.length+len(helpPrefix)], s.buf[:s.length])
	copy(s.buf, helpPrefix)
	s.length += len(helpPrefix)
	s.cursor = s.length
	s.buf[s.length] = 0
	s.writeBytes(s.buf[:s.length])
}
