package service

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/avc-dev/tinyapp/internal/model"
	"github.com/stretchr/testify/assert"
)

// TestProcessCodesWithWorkers проверяет фильтрацию и сохранение порядка
func TestProcessCodesWithWorkers(t *testing.T) {
	tests := []struct {
		name     string
		codes    []model.Code
		valid    map[model.Code]bool
		expected []model.Code
	}{
		{
			name:     "All valid",
			codes:    []model.Code{"a", "b", "c"},
			valid:    map[model.Code]bool{"a": true, "b": true, "c": true},
			expected: []model.Code{"a", "b", "c"},
		},
		{
			name:     "Partially valid keeps input order",
			codes:    []model.Code{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
			valid:    map[model.Code]bool{"b": true, "e": true, "i": true},
			expected: []model.Code{"b", "e", "i"},
		},
		{
			name:     "None valid",
			codes:    []model.Code{"a", "b"},
			valid:    map[model.Code]bool{},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			processor := NewAsyncCodeProcessor(4)
			var calls int32
			var got []model.Code

			// Act
			processor.ProcessCodesWithWorkers(context.Background(), tt.codes,
				func(_ context.Context, code model.Code) bool { return tt.valid[code] },
				func(_ context.Context, validCodes []model.Code) {
					atomic.AddInt32(&calls, 1)
					got = validCodes
				},
			)

			// Assert
			assert.Equal(t, tt.expected, got)
			if tt.expected == nil {
				assert.Zero(t, calls)
			} else {
				assert.Equal(t, int32(1), calls)
			}
		})
	}
}

func TestProcessCodesWithWorkers_Empty(t *testing.T) {
	processor := NewAsyncCodeProcessor(0)

	processor.ProcessCodesWithWorkers(context.Background(), nil,
		func(context.Context, model.Code) bool { t.Fatal("validator must not be called"); return false },
		func(context.Context, []model.Code) { t.Fatal("processor must not be called") },
	)
}

func TestProcessCodesWithWorkers_Cancelled(t *testing.T) {
	processor := NewAsyncCodeProcessor(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	processor.ProcessCodesWithWorkers(ctx, []model.Code{"a", "b"},
		func(context.Context, model.Code) bool { return true },
		func(context.Context, []model.Code) { t.Fatal("processor must not be called") },
	)
}
