// Package paste симулирует нажатие Ctrl+V для вставки результата в активное окно.
// Поведение best-effort: сбой вставки не откатывает запись в буфер обмена.
package paste

// Inserter симулирует вставку текущего содержимого буфера обмена.
type Inserter interface {
	Paste() error
}

// New возвращает платформенную реализацию вставки.
func New() Inserter { return newInserter() }
