package service

import "fmt"

// ExistsFunc сообщает, занят ли кандидат
type ExistsFunc func(candidate string) (bool, error)

// InsertFunc сохраняет кандидата. taken=true значит, что его заняли между проверкой и вставкой.
type InsertFunc func(candidate string) (taken bool, err error)

// GenerateUnique перегенерирует кандидата, пока он занят.
// После maxAttempts неудачных попыток возвращает ErrMaxRetriesExceeded.
func GenerateUnique(gen Generator, exists ExistsFunc, maxAttempts int) (string, error) {
	return InsertUnique(gen, exists, nil, maxAttempts)
}

// InsertUnique генерирует свободного кандидата и сохраняет его через insert.
// Занятый при проверке и занятый при вставке кандидат тратят одну и ту же попытку,
// всего генератор вызывается не больше maxAttempts раз.
// Ошибка insert возвращается как есть.
func InsertUnique(gen Generator, exists ExistsFunc, insert InsertFunc, maxAttempts int) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		candidate := gen.Generate()

		taken, err := exists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check candidate: %w", err)
		}
		if taken {
			continue
		}

		if insert == nil {
			return candidate, nil
		}

		taken, err = insert(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique code after %d attempts: %w", maxAttempts, ErrMaxRetriesExceeded)
}
