package main

import (
	"PolishClipboard/internal/ai"
	"PolishClipboard/internal/app/polisher"
	"PolishClipboard/internal/config"
	"PolishClipboard/internal/service/clipboard"
	"PolishClipboard/internal/service/hotkey"
	"PolishClipboard/internal/service/notify"
	"PolishClipboard/internal/service/paste"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Конфигурация валидируется до любого обращения к сети или буферу обмена
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	//сброс буфера логгера
	defer func() {
		_ = logger.Sync()
	}()

	client := buildClient(cfg)
	pol := polisher.New(
		cfg,
		client,
		clipboard.NewSystem(),
		paste.New(),
		notify.NewSoundNotifier(sugar, cfg.NotifySoundPath),
		sugar,
	)

	// Текст аргументом (интеграции Services/Automator) — один прогон без хоткеев
	if flag.NArg() > 0 {
		source := flag.Arg(0)
		polished, perr := pol.PolishText(context.Background(), source)
		if perr != nil {
			sugar.Errorw("Polish failed", "error", perr)
			// Отдаём исходный текст, чтобы интеграция не потеряла выделение
			fmt.Println(source)
			return
		}
		fmt.Println(polished)
		return
	}

	printBanner(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listener := hotkey.New()

	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()
	g.Go(func() error {
		// Выход конвейера (Ctrl+Shift+Q) гасит слушателя
		defer cancel()
		return ignoreCanceled(pol.Run(runCtx, listener.Events()))
	})
	g.Go(func() error {
		return ignoreCanceled(listener.Run(runCtx))
	})

	if err := g.Wait(); err != nil {
		sugar.Errorw("Stopped with error", "error", err)
		os.Exit(1)
	}
	sugar.Infow("Stopped")
}

// buildClient собирает клиента провайдера и оборачивает его политикой повторов.
func buildClient(cfg *config.Config) ai.Client {
	var base ai.Client
	switch {
	case cfg.UseStub:
		base = ai.NewStubClient()
	case cfg.Provider == config.ProviderOllama:
		base = ai.NewOllamaClient(cfg.OllamaHost, cfg.Model)
	default:
		oc := openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithMaxRetries(0), // повторы — в обёртке WithRetry, не в SDK
		)
		base = ai.NewOpenAIClient(&oc, cfg.Model)
	}
	return ai.WithRetry(base, ai.RetryConfig{
		MaxAttempts: 1 + cfg.Retries,
		Delay:       2 * time.Second,
	})
}

func printBanner(cfg *config.Config) {
	fmt.Println("Polish Clipboard Tool is running.")
	fmt.Println("Press Ctrl+Shift+P to polish copied text.")
	fmt.Println("Press Ctrl+Shift+] to cycle suggestions, Ctrl+Shift+Q to quit.")
	fmt.Printf("Provider: %s  Model: %s  Tone: %s  Alts: %d  Temp: %v\n",
		cfg.Provider, cfg.Model, cfg.Tone, cfg.Alternates, cfg.Temperature)
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
