package tests_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"crm_pipeline/pkg/tests"
)

func TestSeededRandomizerRepeats(t *testing.T) {
	rq := require.New(t)

	a := tests.NewSeededRandomizer(42)
	b := tests.NewSeededRandomizer(42)

	for range 10 {
		rq.Equal(a.Intn(1000), b.Intn(1000))
	}
}

func TestPick(t *testing.T) {
	rq := require.New(t)
	random := tests.NewSeededRandomizer(7)
	items := []string{"Lead", "Proposal"}

	for range 10 {
		rq.Contains(items, tests.Pick(random, items))
	}
}
