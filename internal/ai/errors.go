package ai

import "errors"

// Классификация ошибок провайдера. Сравнивать через errors.Is.
var (
	// ErrAuth провайдер отверг учётные данные; повторы бессмысленны.
	ErrAuth = errors.New("ai: authentication failed")
	// ErrRateLimited провайдер сигнализирует троттлинг; можно повторить после паузы.
	ErrRateLimited = errors.New("ai: rate limited")
	// ErrTimeout запрос не уложился в потолок ожидания.
	ErrTimeout = errors.New("ai: provider timeout")
	// ErrProvider сетевой сбой, неуспешный статус или некорректное тело ответа.
	ErrProvider = errors.New("ai: provider request failed")
	// ErrEmptyCompletion провайдер ответил успехом, но без пригодного текста.
	ErrEmptyCompletion = errors.New("ai: empty completion")
)
