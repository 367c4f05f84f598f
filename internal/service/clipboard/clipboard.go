package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnavailable системный механизм буфера обмена недоступен
// (например, отсутствует утилита xclip/xsel на Linux).
var ErrUnavailable = errors.New("clipboard: unavailable")

// Service доступ к системному буферу обмена. Пустой буфер — валидная пустая строка.
type Service interface {
	Read() (string, error)
	Write(text string) error
}

// System реализует Service поверх github.com/atotto/clipboard.
type System struct{}

func NewSystem() *System { return &System{} }

func (s *System) Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return text, nil
}

func (s *System) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

var _ Service = (*System)(nil)
