package service

import (
	"context"
	"slices"

	"github.com/avc-dev/tinyapp/internal/model"
)

// CodeValidator решает, подходит ли код для обработки
type CodeValidator func(ctx context.Context, code model.Code) bool

// AsyncCodeProcessor проверяет коды параллельно с использованием воркеров и fanIn паттерна
type AsyncCodeProcessor struct {
	workers int
}

// NewAsyncCodeProcessor создает новый AsyncCodeProcessor
func NewAsyncCodeProcessor(workers int) *AsyncCodeProcessor {
	if workers <= 0 {
		workers = 4
	}
	return &AsyncCodeProcessor{workers: workers}
}

type indexedCode struct {
	index int
	code  model.Code
}

// ProcessCodesWithWorkers прогоняет коды через validator и передает прошедшие в processor
// в исходном порядке. processor не вызывается, если валидных кодов нет.
func (p *AsyncCodeProcessor) ProcessCodesWithWorkers(
	ctx context.Context,
	codes []model.Code,
	validator CodeValidator,
	processor func(ctx context.Context, validCodes []model.Code),
) {
	if len(codes) == 0 {
		return
	}

	numWorkers := min(p.workers, len(codes))

	// Создаем канал для кодов
	codesChan := make(chan indexedCode, len(codes))
	for i, code := range codes {
		codesChan <- indexedCode{index: i, code: code}
	}
	close(codesChan)

	// Каждый воркер пишет в свой канал
	workerChannels := make([]chan indexedCode, numWorkers)
	for i := range workerChannels {
		workerChannels[i] = make(chan indexedCode, len(codes))
	}

	for i := 0; i < numWorkers; i++ {
		go func(input <-chan indexedCode, output chan<- indexedCode) {
			defer close(output)
			for item := range input {
				if ctx.Err() != nil {
					return
				}
				if validator(ctx, item.code) {
					output <- item
				}
			}
		}(codesChan, workerChannels[i])
	}

	// FanIn: сливаем результаты от всех воркеров в один канал
	validChan := make(chan indexedCode, len(codes))
	go func() {
		defer close(validChan)
		for _, workerChan := range workerChannels {
			for item := range workerChan {
				validChan <- item
			}
		}
	}()

	var valid []indexedCode
	for item := range validChan {
		valid = append(valid, item)
	}

	if len(valid) == 0 || ctx.Err() != nil {
		return
	}

	slices.SortFunc(valid, func(a, b indexedCode) int { return a.index - b.index })

	validCodes := make([]model.Code, len(valid))
	for i, item := range valid {
		validCodes[i] = item.code
	}
	processor(ctx, validCodes)
}
