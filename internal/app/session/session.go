package session

import (
	"strings"
	"sync"
)

// Session — потокобезопасный буфер последнего результата переписывания.
// Живёт только в рамках цикла слушателя; при выходе просто отбрасывается.
type Session struct {
	mu           sync.Mutex
	source       string
	alternatives []string
	index        int
}

func New() *Session { return &Session{} }

// Store запоминает источник и варианты, сбрасывает курсор на первый вариант.
// Возвращает текущий (первый) вариант.
func (s *Session) Store(source string, alternatives []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = source
	s.alternatives = alternatives
	s.index = 0
	if len(alternatives) == 0 {
		return ""
	}
	return alternatives[0]
}

// Cycle сдвигает курсор на следующий вариант по кругу.
// Возвращает текст, позицию (с единицы), общее число вариантов и ok=false, если вариантов нет.
func (s *Session) Cycle() (text string, position int, total int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.alternatives) == 0 {
		return "", 0, 0, false
	}
	s.index = (s.index + 1) % len(s.alternatives)
	return s.alternatives[s.index], s.index + 1, len(s.alternatives), true
}

// Current возвращает вариант под курсором без сдвига.
func (s *Session) Current() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.alternatives) == 0 {
		return "", false
	}
	return s.alternatives[s.index], true
}

// Matches сообщает, совпадает ли текст с текущим опубликованным вариантом.
// Повторный хоткей полировки на собственном результате трактуется как листание.
func (s *Session) Matches(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.alternatives) == 0 {
		return false
	}
	return strings.TrimSpace(text) == strings.TrimSpace(s.alternatives[s.index])
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.alternatives)
}
