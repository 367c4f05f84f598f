package polisher

import (
	"PolishClipboard/internal/ai"
	"PolishClipboard/internal/app/session"
	"PolishClipboard/internal/config"
	"PolishClipboard/internal/service/clipboard"
	"PolishClipboard/internal/service/hotkey"
	"PolishClipboard/internal/service/notify"
	"PolishClipboard/internal/service/paste"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Polisher — конвейер «буфер обмена → провайдер → буфер обмена».
// Одновременно обрабатывается не более одного срабатывания; лишние дропаются.
type Polisher struct {
	cfg      *config.Config
	client   ai.Client
	clip     clipboard.Service
	inserter paste.Inserter
	sess     *session.Session
	notifier *notify.SoundNotifier
	logger   *zap.SugaredLogger

	running atomic.Bool
}

func New(cfg *config.Config, client ai.Client, clip clipboard.Service, inserter paste.Inserter, notifier *notify.SoundNotifier, logger *zap.SugaredLogger) *Polisher {
	return &Polisher{
		cfg:      cfg,
		client:   client,
		clip:     clip,
		inserter: inserter,
		sess:     session.New(),
		notifier: notifier,
		logger:   logger,
	}
}

// Run потребляет события хоткеев до отмены контекста или события выхода.
func (p *Polisher) Run(ctx context.Context, events <-chan hotkey.Event) error {
	runCtx, cancel := context.WithCancel(ctx)
	// Запросы в полёте бросаем при выходе: чистить нечего, буфер пишется только после полного ответа
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev.Type {
			case hotkey.EventQuit:
				p.logger.Infow("Quit hotkey received")
				return nil
			case hotkey.EventNextSuggestion:
				p.handleTrigger(runCtx, p.cycleSuggestion)
			case hotkey.EventPolish:
				p.handleTrigger(runCtx, p.polishOnce)
			}
		}
	}
}

// handleTrigger запускает обработчик, если конвейер свободен.
// Повторное срабатывание во время обработки дропается, а не ставится в очередь.
func (p *Polisher) handleTrigger(ctx context.Context, fn func(context.Context) error) {
	if !p.running.CompareAndSwap(false, true) {
		p.logger.Infow("Skipping trigger due to overlap")
		return
	}
	go func() {
		defer p.running.Store(false)
		if err := fn(ctx); err != nil {
			p.logger.Errorw("Trigger failed", "error", err)
		}
	}()
}

// Idle сообщает, свободен ли конвейер.
func (p *Polisher) Idle() bool { return !p.running.Load() }

func (p *Polisher) polishOnce(parent context.Context) error {
	tctx, cancel := context.WithTimeoutCause(parent, p.cfg.Timeout(), errors.New("polish timeout"))
	defer cancel()
	start := time.Now()

	src, err := p.clip.Read()
	if err != nil {
		return err
	}
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		p.logger.Infow("Clipboard is empty. Copy some text first.")
		return nil
	}

	// Хоткей на собственном результате трактуем как листание вариантов
	if p.sess.Matches(trimmed) {
		return p.publishNext()
	}

	clean := truncate(trimmed, p.cfg.MaxChars)
	p.logger.Infow("Polishing", "chars", utf8.RuneCountInString(clean), "tone", p.cfg.Tone, "alts", p.cfg.Alternates)

	resp, err := p.client.Rephrase(tctx, ai.Request{
		Text:        clean,
		Tone:        p.cfg.Tone,
		Alternates:  p.cfg.Alternates,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		return err
	}

	primary := p.sess.Store(clean, resp.Texts)
	if err := p.clip.Write(primary); err != nil {
		return err
	}
	p.logger.Infow("Copied polished text to clipboard", "suggestion", fmt.Sprintf("1/%d", len(resp.Texts)))

	if p.cfg.AutoPaste {
		if pasteErr := p.inserter.Paste(); pasteErr != nil {
			// Best-effort: буфер уже записан, пользователь вставит вручную
			p.logger.Warnw("Paste simulation failed; paste manually", "error", pasteErr)
		}
	}
	_ = p.notifier.Play(tctx)

	p.logger.Infow("Polish done", "duration", time.Since(start).String())
	return nil
}

func (p *Polisher) cycleSuggestion(_ context.Context) error {
	return p.publishNext()
}

// publishNext копирует следующий вариант в буфер обмена.
func (p *Polisher) publishNext() error {
	text, pos, total, ok := p.sess.Cycle()
	if !ok {
		p.logger.Infow("No suggestions to cycle. Trigger a polish first.")
		return nil
	}
	if err := p.clip.Write(text); err != nil {
		return err
	}
	p.logger.Infow("Copied next suggestion", "suggestion", fmt.Sprintf("%d/%d", pos, total))
	return nil
}

// PolishText один прогон без буфера обмена: для текста, переданного аргументом CLI
// (интеграции Services/Automator). Возвращает основной вариант переписывания.
func (p *Polisher) PolishText(ctx context.Context, text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", nil
	}
	tctx, cancel := context.WithTimeoutCause(ctx, p.cfg.Timeout(), errors.New("polish timeout"))
	defer cancel()

	resp, err := p.client.Rephrase(tctx, ai.Request{
		Text:        truncate(trimmed, p.cfg.MaxChars),
		Tone:        p.cfg.Tone,
		Alternates:  1,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		return "", err
	}
	return resp.Primary(), nil
}

// truncate обрезает текст до limit рун и помечает обрез многоточием.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}
