package shell

import "fmt"

// enter accepts the current line: commit to history, tokenize, dispatch.
// An empty or all-delimiter line just redraws the prompt.
func (s *Shell) enter() {
	if s.length == 0 {
		s.writePrompt()
		return
	}

	s.buf[s.length] = 0
	s.historyCommit()

	args := tokenize(s.buf[:s.length])
	s.length = 0
	s.cursor = 0
	s.buf[0] = 0

	if len(args) == 0 {
		s.writePrompt()
		return
	}

	s.writeString("\r\n")

	// help short-circuits the table scan so it works even when the
	// descriptor table was replaced without it.
	if args[0] == "help" {
		s.active = true
		s.help(args)
		s.active = false
		s.writePrompt()
		return
	}

	for i := range s.commands {
		if s.commands[i].Name != args[0] || s.commands[i].Run == nil {
			continue
		}
		s.active = true
		ret := s.commands[i].Run(s, args)
		s.active = false
		if s.displayReturn {
			s.writeString(fmt.Sprintf("Return: %d\r\n", ret))
		}
		s.writePrompt()
		return
	}

	s.writeString(textCommandNone)
	s.writePrompt()
}

// tokenize splits a command line in one left-to-right pass. Space, tab and
// comma delimit tokens outside double quotes; a double quote toggles quoting
// and is dropped; a backslash is dropped and the byte after it passes through
// uninterpreted, even inside quotes.
func tokenize(line []byte) []string {
	var args []string
	var cur []byte
	inToken := false
	quoted := false

	flush := func() {
		if !inToken {
			return
		}
		args = append(args, string(cur))
		cur = cur[:0]
		inToken = false
	}

	for i := 0; i < len(line); i++ {
		b := line[i]
		switch {
		case b == '\\':
			if i+1 < len(line) {
				i++
				cur = append(cur, line[i])
				inToken = true
			}
		case b == '"':
			quoted = !quoted
		case !quoted && (b == ' ' || b == '\t' || b == ','):
			flush()
		default:
			cur = append(cur, b)
			inToken = true
		}
	}
	flush()
	return args
}
