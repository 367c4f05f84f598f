package notify

import (
	"PolishClipboard/internal/service/notify/player"
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// SoundNotifier инкапсулирует логику проигрывания короткого звука-уведомления
// после записи результата в буфер обмена. Пустой путь — нотификации выключены.
type SoundNotifier struct {
	logger *zap.SugaredLogger
	path   string
	ply    player.Player
}

// NewSoundNotifier создаёт нотификатор. Относительный путь сначала ищется рядом с бинарём.
func NewSoundNotifier(logger *zap.SugaredLogger, path string) *SoundNotifier {
	path = strings.TrimSpace(path)
	if path != "" && !filepath.IsAbs(path) {
		if exe, err := os.Executable(); err == nil {
			cand := filepath.Join(filepath.Dir(exe), path)
			if _, statErr := os.Stat(cand); statErr == nil {
				path = cand
			}
		}
	}
	return &SoundNotifier{logger: logger, path: path, ply: player.New()}
}

// Play проигрывает звук уведомления. Ошибки логируются и возвращаются,
// чтобы вызывающий мог принять решение (например, проигнорировать).
func (n *SoundNotifier) Play(ctx context.Context) error {
	if n == nil || n.path == "" {
		return nil
	}
	// Проверяем отмену контекста до начала
	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	default:
	}

	f, err := os.Open(n.path)
	if err != nil {
		if n.logger != nil {
			n.logger.Warnw("Не удалось открыть звуковой файл уведомления", "path", n.path, "error", err)
		}
		return err
	}
	defer f.Close()

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(n.path), "."))
	if ext == "" {
		ext = "mp3" // по умолчанию
	}

	if err := n.ply.Play(ext, f); err != nil {
		if n.logger != nil {
			n.logger.Warnw("Не удалось воспроизвести звуковое уведомление", "path", n.path, "error", err)
		}
		return err
	}
	return nil
}
