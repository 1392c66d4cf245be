package utils

import (
	"math/rand"
	"time"
)

// PRNGService — обертка над генератором случайных чисел, чтобы одна и та же
// анимация могла быть воспроизведена по сиду (в тестах и при отладке).
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range возвращает случайное число в диапазоне [min, min+span).
func (s *PRNGService) Range(min, span float64) float64 {
	return min + s.rng.Float64()*span
}

// Jitter возвращает случайное смещение в диапазоне [-amount, amount).
func (s *PRNGService) Jitter(amount float64) float64 {
	return s.rng.Float64()*2*amount - amount
}

// Coin — true с вероятностью 1/2.
func (s *PRNGService) Coin() bool {
	return s.rng.Float64() > 0.5
}
