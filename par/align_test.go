package par_test

import (
	"testing"
	"unsafe"

	"github.com/katalvlaran/ligra/par"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignedFloat64sHasRequestedLength(t *testing.T) {
	a := par.AlignedFloat64s(37)
	require.Len(t, a, 37)
	addr := uintptr(unsafe.Pointer(&a[0]))
	assert.Equal(t, uintptr(0), addr%64)
}

func TestAlignedUint32sHasRequestedLength(t *testing.T) {
	a := par.AlignedUint32s(5)
	require.Len(t, a, 5)
	addr := uintptr(unsafe.Pointer(&a[0]))
	assert.Equal(t, uintptr(0), addr%64)
}
