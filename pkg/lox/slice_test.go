package lox_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"crm_pipeline/pkg/lox"
)

func TestMap(t *testing.T) {
	rq := require.New(t)

	rq.Equal([]string{"1", "2"}, lox.Map([]int{1, 2}, strconv.Itoa))

	// nil на входе даёт пустой, но не nil срез: JSON-ответы получают [] вместо null
	empty := lox.Map([]int(nil), strconv.Itoa)
	rq.NotNil(empty)
	rq.Empty(empty)
}
