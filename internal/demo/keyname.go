package demo

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyName maps a terminal key event to the lowercase input name used in
// binding tables and profiles. Printable runes name themselves, folded to
// lowercase so shifted letters alias their base key. Returns "" for keys
// that have no stable name.
//
// Modifier state is not encoded. Ctrl+H, Ctrl+I and Ctrl+M share key codes
// with backspace, tab and enter, so those combinations arrive under the
// named keys.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return "space"
		}
		return string(unicode.ToLower(r))
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyDelete:
		return "delete"
	case tcell.KeyInsert:
		return "insert"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyPgUp:
		return "pageup"
	case tcell.KeyPgDn:
		return "pagedown"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyF1:
		return "f1"
	case tcell.KeyF2:
		return "f2"
	case tcell.KeyF3:
		return "f3"
	case tcell.KeyF4:
		return "f4"
	case tcell.KeyF5:
		return "f5"
	case tcell.KeyF6:
		return "f6"
	case tcell.KeyF7:
		return "f7"
	case tcell.KeyF8:
		return "f8"
	case tcell.KeyF9:
		return "f9"
	case tcell.KeyF10:
		return "f10"
	case tcell.KeyF11:
		return "f11"
	case tcell.KeyF12:
		return "f12"
	default:
		// The ctrl range cannot appear as switch cases: KeyCtrlH, KeyCtrlI
		// and KeyCtrlM are the same constants as KeyBackspace, KeyTab and
		// KeyEnter.
		if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return fmt.Sprintf("ctrl+%c", 'a'+rune(k-tcell.KeyCtrlA))
		}
		return ""
	}
}
