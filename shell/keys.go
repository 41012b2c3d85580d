package shell

// Control bytes with built-in bindings.
const (
	KeyLF        byte = 0x0a
	KeyCR        byte = 0x0d
	KeyTab       byte = 0x09
	KeyBackspace byte = 0x08
	KeyDelete    byte = 0x7f
	KeyEsc       byte = 0x1b
)

// KeyAction reacts to one input byte on one shell instance.
type KeyAction func(s *Shell)

// KeyBinding maps a trigger byte to an action. Bindings are externally owned
// and read-only to the shell. A nil Action still consumes the byte, which
// disables a key.
type KeyBinding struct {
	Key    byte
	Action KeyAction
}

// defaultKeys is consulted after the per-instance override table. A byte both
// tables match runs both actions, override first.
var defaultKeys = []KeyBinding{
	{Key: KeyLF, Action: (*Shell).enter},
	{Key: KeyCR, Action: (*Shell).enter},
	{Key: KeyTab, Action: (*Shell).tab},
	{Key: KeyBackspace, Action: (*Shell).backspace},
	{Key: KeyDelete, Action: (*Shell).backspace},
	{Key: KeyEsc, Action: (*Shell).escStart},
}
