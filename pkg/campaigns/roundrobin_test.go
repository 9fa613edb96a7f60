package campaigns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignAccount(t *testing.T) {
	t.Run("Success - Rotates over the pool in order", func(t *testing.T) {
		pool := []int{11, 22, 33}

		got := make([]int, 0, 7)
		for i := 0; i < 7; i++ {
			got = append(got, AssignAccount(pool, i))
		}

		assert.Equal(t, []int{11, 22, 33, 11, 22, 33, 11}, got)
	})

	t.Run("Success - Single account pool", func(t *testing.T) {
		pool := []int{42}
		for i := 0; i < 5; i++ {
			assert.Equal(t, 42, AssignAccount(pool, i))
		}
	})

	t.Run("Success - Assignment is deterministic", func(t *testing.T) {
		pool := []int{1, 2}
		assert.Equal(t, AssignAccount(pool, 9), AssignAccount(pool, 9))
	})
}
