package suffixarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCyclicPrev(t *testing.T) {
	assert.Equal(t, 5, cyclicPrev(7, 2, 10))
	assert.Equal(t, 8, cyclicPrev(1, 3, 10))
	assert.Equal(t, 0, cyclicPrev(4, 4, 10))
}

func TestDoublingSAScenarios(t *testing.T) {
	for name, want := range scenarios {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, DoublingSA(encodeBytes(name)))
		})
	}
}

func TestDoublingSASingleSentinel(t *testing.T) {
	assert.Equal(t, []int{0}, DoublingSA([]int{0}))
}

func TestDoublingSATwoElements(t *testing.T) {
	assert.Equal(t, []int{1, 0}, DoublingSA([]int{5, 0}))
}
