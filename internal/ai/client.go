package ai

import "context"

// Request параметры одного переписывания.
type Request struct {
	Text        string  // Исходный текст (непустой, уже усечённый вызывающим)
	Tone        string  // polite|formal|friendly|concise
	Alternates  int     // Сколько вариантов запросить (минимум 1)
	Temperature float64 // Температура 0-2
}

// Response результат переписывания. Первый элемент — основной вариант.
type Response struct {
	Texts []string
}

// Primary возвращает основной (первый) вариант переписывания.
func (r Response) Primary() string {
	if len(r.Texts) == 0 {
		return ""
	}
	return r.Texts[0]
}

// Client интерфейс для взаимодействия с провайдером переписывания.
// Все реализации должны быть взаимозаменяемыми.
type Client interface {
	Rephrase(ctx context.Context, req Request) (Response, error)
}
