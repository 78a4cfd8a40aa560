package tests

import (
	"math/rand/v2"
)

// Randomizer — источник случайных данных для property-тестов.
// Seed логируется тестом, чтобы падение можно было воспроизвести.
type Randomizer struct {
	Seed uint64
	Intn func(n int) int
}

func NewRandomizer() Randomizer {
	seed := rand.Uint64() //nolint:gosec // for tests

	return NewSeededRandomizer(seed)
}

func NewSeededRandomizer(seed uint64) Randomizer {
	random := rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // for tests

	return Randomizer{
		Seed: seed,
		Intn: random.IntN,
	}
}

// Pick возвращает случайный элемент непустого среза.
func Pick[T any](r Randomizer, items []T) T {
	return items[r.Intn(len(items))]
}
