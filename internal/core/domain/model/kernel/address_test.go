package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternbook/internal/core/domain/model/kernel"
	"patternbook/internal/pkg/errs"
)

func TestNewAddress(t *testing.T) {
	tests := []struct {
		name    string
		x       kernel.Coordinate
		y       kernel.Coordinate
		wantErr bool
	}{
		{
			name:    "valid address",
			x:       5,
			y:       5,
			wantErr: false,
		},
		{
			name:    "valid address at min bounds",
			x:       kernel.AddressMinX,
			y:       kernel.AddressMinY,
			wantErr: false,
		},
		{
			name:    "valid address at max bounds",
			x:       kernel.AddressMaxX,
			y:       kernel.AddressMaxY,
			wantErr: false,
		},
		{
			name:    "invalid x too small",
			x:       kernel.AddressMinX - 1,
			y:       5,
			wantErr: true,
		},
		{
			name:    "invalid x too large",
			x:       kernel.AddressMaxX + 1,
			y:       5,
			wantErr: true,
		},
		{
			name:    "invalid y too small",
			x:       5,
			y:       kernel.AddressMinY - 1,
			wantErr: true,
		},
		{
			name:    "invalid y too large",
			x:       5,
			y:       kernel.AddressMaxY + 1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := kernel.NewAddress(tt.x, tt.y)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				return
			}

			require.NoError(t, err)
			require.NoError(t, addr.Validate())
			assert.Equal(t, tt.x, addr.X())
			assert.Equal(t, tt.y, addr.Y())
		})
	}
}

func TestNewRandomAddress(t *testing.T) {
	for range 100 {
		addr, err := kernel.NewRandomAddress()

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.GreaterOrEqual(t, addr.X(), kernel.AddressMinX)
		assert.LessOrEqual(t, addr.X(), kernel.AddressMaxX)
		assert.GreaterOrEqual(t, addr.Y(), kernel.AddressMinY)
		assert.LessOrEqual(t, addr.Y(), kernel.AddressMaxY)
	}
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var addr kernel.Address

		err := addr.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "address must be created")
	})

	t.Run("constructed address passes validation", func(t *testing.T) {
		addr, err := kernel.NewAddress(3, 4)

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
	})
}

func TestAddress_IsEqual(t *testing.T) {
	t.Run("equal addresses", func(t *testing.T) {
		a, _ := kernel.NewAddress(5, 7)
		b, _ := kernel.NewAddress(5, 7)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("different addresses", func(t *testing.T) {
		a, _ := kernel.NewAddress(5, 7)
		b, _ := kernel.NewAddress(3, 4)

		equal, err := a.IsEqual(b)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("zero value address fails", func(t *testing.T) {
		a, _ := kernel.NewAddress(5, 7)
		var b kernel.Address

		_, err := a.IsEqual(b)

		require.Error(t, err)
	})
}

func TestAddress_Distance(t *testing.T) {
	tests := []struct {
		name string
		ax   kernel.Coordinate
		ay   kernel.Coordinate
		bx   kernel.Coordinate
		by   kernel.Coordinate
		want int
	}{
		{name: "same point", ax: 5, ay: 5, bx: 5, by: 5, want: 0},
		{name: "horizontal only", ax: 1, ay: 1, bx: 4, by: 1, want: 3},
		{name: "vertical only", ax: 1, ay: 1, bx: 1, by: 5, want: 4},
		{name: "diagonal", ax: 1, ay: 1, bx: 4, by: 5, want: 7},
		{name: "corner to corner", ax: 1, ay: 1, bx: 10, by: 10, want: 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := kernel.NewAddress(tt.ax, tt.ay)
			require.NoError(t, err)
			b, err := kernel.NewAddress(tt.bx, tt.by)
			require.NoError(t, err)

			got, err := a.Distance(b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// Distance is symmetric.
			back, err := b.Distance(a)
			require.NoError(t, err)
			assert.Equal(t, tt.want, back)
		})
	}

	t.Run("zero value address fails", func(t *testing.T) {
		a, _ := kernel.NewAddress(1, 1)
		var b kernel.Address

		_, err := a.Distance(b)

		require.Error(t, err)
	})
}

func TestAddress_String(t *testing.T) {
	addr, err := kernel.NewAddress(5, 7)

	require.NoError(t, err)
	assert.Equal(t, "Address(5,7)", addr.String())
}
