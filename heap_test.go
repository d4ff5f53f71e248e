package minerva

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_AllocationThreading(t *testing.T) {
	heap := NewHeap()

	for i := 0; i < 10; i++ {
		heap.NewPair(IntegerValue(int32(i)), NilValue())
	}

	assert.Equal(t, 10, heap.Len())
	live, allocated, freed := heap.Stats()
	assert.Equal(t, 10, live)
	assert.Equal(t, 10, allocated)
	assert.Equal(t, 0, freed)
}

func TestHeap_AllocationThreading_MostRecentFirst(t *testing.T) {
	heap := NewHeap()

	heap.NewPair(IntegerValue(1), NilValue())
	second := heap.NewPair(IntegerValue(2), NilValue())

	require.Same(t, &second.AsPair().obj.hdr, heap.head)
}

func TestHeap_NewBigInt(t *testing.T) {
	heap := NewHeap()

	big1, _ := new(big.Int).SetString("99999999999999999999999999999", 10)
	v := heap.NewBigInt(big1)

	require.True(t, v.IsBigInt())
	assert.Equal(t, "99999999999999999999999999999", v.AsBigInt().Int().String())
}

func TestHeap_MaxObjects_PanicsOutOfMemory(t *testing.T) {
	heap := NewHeap()
	heap.MaxObjects = 2

	heap.NewPair(NilValue(), NilValue())
	heap.NewPair(NilValue(), NilValue())

	assert.PanicsWithValue(t, OutOfMemoryError{Heap: heap}, func() {
		heap.NewPair(NilValue(), NilValue())
	})
}

func TestHeap_NewHashMap_NilEntriesInitialised(t *testing.T) {
	heap := NewHeap()
	v := heap.NewHashMap(nil)

	require.True(t, v.IsHashMap())
	assert.Equal(t, 0, v.AsHashMap().Len())

	v.AsHashMap().Set(IntegerValue(1), IntegerValue(2))
	got, ok := v.AsHashMap().Get(IntegerValue(1))
	require.True(t, ok)
	assert.Equal(t, IntegerValue(2), got)
}
