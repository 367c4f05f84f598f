//go:build windows

package hotkey

import (
	"context"
	"runtime"
	"syscall"
	"time"
	"unsafe"

	"github.com/lxn/win"
)

// Обёртки для функций, которых нет в lxn/win
var (
	user32               = syscall.NewLazyDLL("user32.dll")
	procRegisterHotKey   = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey = user32.NewProc("UnregisterHotKey")
)

// Идентификаторы зарегистрированных хоткеев (wParam в WM_HOTKEY).
const (
	hotkeyIDPolish = 1
	hotkeyIDNext   = 2
	hotkeyIDQuit   = 3
)

const (
	modControl = 0x0002
	modShift   = 0x0004

	vkP    = 0x50
	vkQ    = 0x51
	vkOEM6 = 0xDD // клавиша ']'
)

type winImpl struct{}

func newWinListener() (winListener, error) { return &winImpl{}, nil }

func (w *winImpl) run(ctx context.Context, keysOut chan<- Event) {
	// UI/WinAPI должен жить в закрепленном системном потоке
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	className := syscall.StringToUTF16Ptr("PolishHiddenWindowClass")

	// Регистрация класса окна
	var wc win.WNDCLASSEX
	wc.CbSize = uint32(unsafe.Sizeof(wc))
	wc.LpfnWndProc = syscall.NewCallback(func(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
		switch msg {
		case win.WM_HOTKEY:
			var evType EventType
			switch wParam {
			case hotkeyIDPolish:
				evType = EventPolish
			case hotkeyIDNext:
				evType = EventNextSuggestion
			case hotkeyIDQuit:
				evType = EventQuit
			default:
				return 0
			}
			select {
			case keysOut <- Event{Type: evType, At: time.Now()}:
			default:
			}
			return 0
		case win.WM_DESTROY:
			win.PostQuitMessage(0)
			return 0
		}
		return win.DefWindowProc(hwnd, msg, wParam, lParam)
	})
	wc.HInstance = win.GetModuleHandle(nil)
	wc.HCursor = win.LoadCursor(0, (*uint16)(unsafe.Pointer(uintptr(win.IDC_ARROW))))
	wc.LpszClassName = className
	if win.RegisterClassEx(&wc) == 0 {
		// возможно, уже зарегистрирован — пробуем продолжить
	}

	// Создаём скрытое окно
	hwnd := win.CreateWindowEx(
		0,
		className,
		syscall.StringToUTF16Ptr("PolishHiddenWindow"),
		0,
		0, 0, 0, 0, // x, y, width, height
		0, // parent
		0, // menu
		wc.HInstance,
		nil,
	)
	if hwnd == 0 {
		return
	}

	// Регистрируем глобальные хоткеи: Ctrl+Shift+P / Ctrl+Shift+] / Ctrl+Shift+Q
	_ = registerHotKey(hwnd, hotkeyIDPolish, modControl|modShift, vkP)
	_ = registerHotKey(hwnd, hotkeyIDNext, modControl|modShift, vkOEM6)
	_ = registerHotKey(hwnd, hotkeyIDQuit, modControl|modShift, vkQ)

	// Параллельно следим за ctx и закрываем окно
	done := make(chan struct{}, 1)
	go func() {
		<-ctx.Done()
		win.PostMessage(hwnd, win.WM_CLOSE, 0, 0)
		done <- struct{}{}
	}()

	// Цикл сообщений до отмены контекста
	msg := new(win.MSG)
	for {
		r := win.GetMessage(msg, 0, 0, 0)
		if r == 0 || r == -1 { // WM_QUIT или ошибка
			break
		}
		win.TranslateMessage(msg)
		win.DispatchMessage(msg)
		select {
		case <-done:
			break
		default:
		}
	}

	// Очистка
	_ = unregisterHotKey(hwnd, hotkeyIDPolish)
	_ = unregisterHotKey(hwnd, hotkeyIDNext)
	_ = unregisterHotKey(hwnd, hotkeyIDQuit)
	win.DestroyWindow(hwnd)
}

func registerHotKey(hwnd win.HWND, id int32, modifiers uint32, vk uint32) bool {
	if procRegisterHotKey.Find() != nil {
		return false
	}
	r, _, _ := procRegisterHotKey.Call(uintptr(hwnd), uintptr(id), uintptr(modifiers), uintptr(vk))
	return r != 0
}

func unregisterHotKey(hwnd win.HWND, id int32) bool {
	if procUnregisterHotKey.Find() != nil {
		return false
	}
	r, _, _ := procUnregisterHotKey.Call(uintptr(hwnd), uintptr(id))
	return r != 0
}
