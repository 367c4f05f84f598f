//go:build windows

package paste

import (
	"errors"
	"syscall"
	"time"
)

// keybd_event достаточно для последовательности Ctrl+V; SendInput здесь избыточен
var (
	user32         = syscall.NewLazyDLL("user32.dll")
	procKeybdEvent = user32.NewProc("keybd_event")
)

const (
	vkControl      = 0x11
	vkV            = 0x56
	keyeventfKeyUp = 0x0002
)

type winInserter struct{}

func newInserter() Inserter { return &winInserter{} }

// Paste отправляет Ctrl+V активному окну. Фокус не проверяется:
// куда ушло нажатие — туда и вставилось.
func (w *winInserter) Paste() error {
	if procKeybdEvent.Find() != nil {
		return errors.New("paste: keybd_event unavailable")
	}

	// Небольшая пауза, чтобы система успела отпустить клавиши самого хоткея
	time.Sleep(50 * time.Millisecond)

	keybdEvent(vkControl, 0)
	keybdEvent(vkV, 0)
	keybdEvent(vkV, keyeventfKeyUp)
	keybdEvent(vkControl, keyeventfKeyUp)
	return nil
}

func keybdEvent(vk byte, flags uint32) {
	_, _, _ = procKeybdEvent.Call(uintptr(vk), 0, uintptr(flags), 0)
}
