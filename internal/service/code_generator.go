package service

import (
	"crypto/rand"
	"math/big"
)

// AllowedChars 62 символа: заглавные, строчные буквы и цифры
const AllowedChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultCodeLength длина кода по умолчанию
const DefaultCodeLength = 6

// Generator выдает случайные строки-кандидаты
type Generator interface {
	Generate() string
}

// CodeGenerator генерирует коды фиксированной длины из криптографически стойкого источника
type CodeGenerator struct {
	length int
	max    *big.Int
}

// NewCodeGenerator создает генератор кодов заданной длины
func NewCodeGenerator(length int) *CodeGenerator {
	if length <= 0 {
		length = DefaultCodeLength
	}
	return &CodeGenerator{
		length: length,
		max:    big.NewInt(int64(len(AllowedChars))),
	}
}

// Generate генерирует случайный код
func (g *CodeGenerator) Generate() string {
	result := make([]byte, g.length)

	for i := range result {
		n, err := rand.Int(rand.Reader, g.max)
		if err != nil {
			panic("crypto/rand failed: " + err.Error())
		}
		result[i] = AllowedChars[n.Int64()]
	}

	return string(result)
}
