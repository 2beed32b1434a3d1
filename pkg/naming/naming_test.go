package naming_test

import (
	"testing"

	"github.com/arthur-debert/pngico/pkg/naming"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalSizes(t *testing.T) {
	set := naming.CanonicalSizes()

	assert.Equal(t, []int{16, 20, 24, 30, 32, 36, 40, 48, 60, 64, 72, 80, 96, 256}, set.Ints())
	assert.True(t, set.Contains(48))
	assert.False(t, set.Contains(17))

	// Callers must not be able to mutate the shared list
	sizes := set.Sizes()
	sizes[0] = 999
	assert.Equal(t, naming.Size(16), naming.CanonicalSizes().Sizes()[0])
	assert.Equal(t, naming.Size(16), set.Sizes()[0])
}

func TestInputName(t *testing.T) {
	assert.Equal(t, "16.png", naming.InputName(16))
	assert.Equal(t, "256.png", naming.InputName(256))
}

func TestEntryName(t *testing.T) {
	set := naming.CanonicalSizes()

	tests := []struct {
		name   string
		width  uint32
		height uint32
		bpp    uint16
		want   string
	}{
		{"canonical square", 32, 32, 32, "32.png"},
		{"largest canonical", 256, 256, 32, "256.png"},
		{"non square", 48, 32, 32, "48x32.png"},
		{"non canonical square", 17, 17, 32, "17x17.png"},
		{"low depth", 16, 16, 8, "16@8.png"},
		{"non square low depth", 48, 32, 4, "48x32@4.png"},
		{"zero depth", 24, 24, 0, "24@0.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, set.EntryName(tt.width, tt.height, tt.bpp))
		})
	}
}

func TestEntryName_CustomSet(t *testing.T) {
	set, err := naming.ParseSizes([]int{17, 33})
	require.NoError(t, err)

	assert.Equal(t, "17.png", set.EntryName(17, 17, 32))
	assert.Equal(t, "16x16.png", set.EntryName(16, 16, 32))
}

func TestParseSizes(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		wantErr string
	}{
		{"valid", []int{16, 32, 256}, ""},
		{"empty", nil, "empty"},
		{"zero", []int{0, 16}, "out of range"},
		{"too large", []int{16, 512}, "out of range"},
		{"descending", []int{32, 16}, "strictly ascending"},
		{"duplicate", []int{16, 16}, "strictly ascending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := naming.ParseSizes(tt.values)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.values, set.Ints())
			assert.Equal(t, len(tt.values), set.Len())
		})
	}
}
