package service

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/avc-dev/tinyapp/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCodeGenerator_Generate проверяет длину и алфавит кода
func TestCodeGenerator_Generate(t *testing.T) {
	tests := []struct {
		name           string
		length         int
		expectedLength int
	}{
		{
			name:           "Default length",
			length:         DefaultCodeLength,
			expectedLength: 6,
		},
		{
			name:           "Custom length",
			length:         10,
			expectedLength: 10,
		},
		{
			name:           "Non-positive length falls back to default",
			length:         0,
			expectedLength: DefaultCodeLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			gen := NewCodeGenerator(tt.length)

			// Act
			code := gen.Generate()

			// Assert
			assert.Len(t, code, tt.expectedLength)
			for _, char := range code {
				assert.True(t, strings.ContainsRune(AllowedChars, char),
					"Code contains invalid character: %c", char)
			}
		})
	}
}

func TestAllowedChars(t *testing.T) {
	assert.Len(t, AllowedChars, 62)
}

// TestCodeGenerator_Concurrent проверяет генерацию из нескольких горутин
func TestCodeGenerator_Concurrent(t *testing.T) {
	gen := NewCodeGenerator(DefaultCodeLength)

	const numGoroutines = 20
	const perGoroutine = 50

	var mu sync.Mutex
	seen := make(map[string]struct{}, numGoroutines*perGoroutine)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				code := gen.Generate()
				mu.Lock()
				seen[code] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// 62^6 вариантов, повторы на тысяче кодов практически невозможны
	assert.Greater(t, len(seen), numGoroutines*perGoroutine-5)
}

// TestGenerateUnique_SuccessAfterRetries проверяет успех после нескольких коллизий
func TestGenerateUnique_SuccessAfterRetries(t *testing.T) {
	tests := []struct {
		name             string
		failUntilAttempt int
	}{
		{
			name:             "Success on first attempt",
			failUntilAttempt: 1,
		},
		{
			name:             "Success on second attempt",
			failUntilAttempt: 2,
		},
		{
			name:             "Success on last attempt",
			failUntilAttempt: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockGen := mocks.NewMockGenerator(t)
			if tt.failUntilAttempt > 1 {
				mockGen.EXPECT().Generate().Return("taken0").Times(tt.failUntilAttempt - 1)
			}
			mockGen.EXPECT().Generate().Return("free00").Once()

			attempts := 0
			exists := func(candidate string) (bool, error) {
				attempts++
				return candidate == "taken0", nil
			}

			// Act
			code, err := GenerateUnique(mockGen, exists, 10)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, "free00", code)
			assert.Equal(t, tt.failUntilAttempt, attempts)
		})
	}
}

// TestGenerateUnique_MaxRetriesExceeded проверяет исчерпание попыток
func TestGenerateUnique_MaxRetriesExceeded(t *testing.T) {
	// Arrange
	mockGen := mocks.NewMockGenerator(t)
	mockGen.EXPECT().Generate().Return("taken0").Times(3)

	// Act
	_, err := GenerateUnique(mockGen, func(string) (bool, error) { return true, nil }, 3)

	// Assert
	assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
}

// TestGenerateUnique_CheckerError проверяет проброс ошибки проверки
func TestGenerateUnique_CheckerError(t *testing.T) {
	mockGen := mocks.NewMockGenerator(t)
	mockGen.EXPECT().Generate().Return("abc123").Once()
	storeErr := errors.New("store unavailable")

	_, err := GenerateUnique(mockGen, func(string) (bool, error) { return false, storeErr }, 5)

	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrMaxRetriesExceeded)
}

// TestInsertUnique_SharedAttemptBudget проверяет, что коллизии при проверке и при вставке
// расходуют один бюджет попыток
func TestInsertUnique_SharedAttemptBudget(t *testing.T) {
	// Arrange
	mockGen := mocks.NewMockGenerator(t)
	mockGen.EXPECT().Generate().Return("taken0").Twice()
	mockGen.EXPECT().Generate().Return("racey0").Twice()

	exists := func(candidate string) (bool, error) {
		return candidate == "taken0", nil
	}
	inserts := 0
	insert := func(string) (bool, error) {
		inserts++
		return true, nil
	}

	// Act
	_, err := InsertUnique(mockGen, exists, insert, 4)

	// Assert
	assert.ErrorIs(t, err, ErrMaxRetriesExceeded)
	assert.Equal(t, 2, inserts)
}

func TestInsertUnique_RetriesInsertCollision(t *testing.T) {
	mockGen := mocks.NewMockGenerator(t)
	mockGen.EXPECT().Generate().Return("racey0").Once()
	mockGen.EXPECT().Generate().Return("free00").Once()

	var inserted []string
	insert := func(candidate string) (bool, error) {
		inserted = append(inserted, candidate)
		return candidate == "racey0", nil
	}

	code, err := InsertUnique(mockGen, func(string) (bool, error) { return false, nil }, insert, 10)

	require.NoError(t, err)
	assert.Equal(t, "free00", code)
	assert.Equal(t, []string{"racey0", "free00"}, inserted)
}

func TestInsertUnique_InsertError(t *testing.T) {
	mockGen := mocks.NewMockGenerator(t)
	mockGen.EXPECT().Generate().Return("abc123").Once()
	insertErr := errors.New("store closed")

	_, err := InsertUnique(mockGen, func(string) (bool, error) { return false, nil }, func(string) (bool, error) {
		return false, insertErr
	}, 5)

	assert.ErrorIs(t, err, insertErr)
	assert.NotErrorIs(t, err, ErrMaxRetriesExceeded)
}
