//go:build !windows

package hotkey

import "errors"

func newWinListener() (winListener, error) {
	return nil, errors.New("hotkey: global hotkey listener unavailable on this platform")
}
