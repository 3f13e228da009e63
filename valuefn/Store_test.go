package valuefn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/rlagents/rlerr"
)

func TestInvalidInitMethod(t *testing.T) {
	_, err := NewDense(3, 2, "bogus", rand.NewSource(1))
	require.Error(t, err)
	assert.True(t, rlerr.IsInvalidConfig(err))

	_, err = NewSparse[string](2, "bogus", rand.NewSource(1))
	require.Error(t, err)
	assert.True(t, rlerr.IsInvalidConfig(err))

	_, err = Config{Backing: DenseBacking, Init: "bogus"}.Create(3, 2, 1)
	assert.True(t, rlerr.IsInvalidConfig(err))

	_, err = Config{Backing: "tree", Init: Zeros}.Create(3, 2, 1)
	assert.True(t, rlerr.IsInvalidConfig(err))
}

func TestInvalidSizes(t *testing.T) {
	_, err := NewDense(0, 2, Zeros, nil)
	assert.True(t, rlerr.IsInvalidConfig(err))

	_, err = NewDense(2, 0, Zeros, nil)
	assert.True(t, rlerr.IsInvalidConfig(err))

	_, err = NewSparse[int](0, Zeros, nil)
	assert.True(t, rlerr.IsInvalidConfig(err))
}

func TestInitialValues(t *testing.T) {
	tests := []struct {
		method   InitMethod
		min, max float64
	}{
		{Zeros, 0, 0},
		{Ones, 1, 1},
		{Random, 0, 1},
	}

	for _, test := range tests {
		t.Run(string(test.method), func(t *testing.T) {
			dense, err := NewDense(4, 3, test.method, rand.NewSource(7))
			require.NoError(t, err)
			sparse, err := NewSparse[string](3, test.method,
				rand.NewSource(7))
			require.NoError(t, err)

			for s := 0; s < 4; s++ {
				d, err := dense.ValuesFor(s)
				require.NoError(t, err)
				sp, err := sparse.ValuesFor(string(rune('a' + s)))
				require.NoError(t, err)

				require.Len(t, d, 3)
				require.Len(t, sp, 3)
				for _, v := range append(d, sp...) {
					assert.GreaterOrEqual(t, v, test.min)
					assert.LessOrEqual(t, v, test.max)
				}
			}
		})
	}
}

func TestRandomInitIsIndependent(t *testing.T) {
	dense, err := NewDense(10, 10, Random, rand.NewSource(3))
	require.NoError(t, err)

	seen := make(map[float64]bool)
	for s := 0; s < 10; s++ {
		values, err := dense.ValuesFor(s)
		require.NoError(t, err)
		for _, v := range values {
			assert.Less(t, v, 1.0)
			seen[v] = true
		}
	}
	assert.Greater(t, len(seen), 90)
}

func TestDenseReadWrite(t *testing.T) {
	d, err := NewDense(2, 3, Zeros, nil)
	require.NoError(t, err)

	require.NoError(t, d.Write(1, 2, 4.5))
	v, err := d.Read(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	values, err := d.ValuesFor(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 4.5}, values)

	// ValuesFor must return a copy
	values[0] = 10
	v, _ = d.Read(1, 0)
	assert.Equal(t, 0.0, v)

	assert.Equal(t, 2, d.States())
	assert.Equal(t, 3, d.Actions())
}

func TestDenseOutOfRange(t *testing.T) {
	d, err := NewDense(2, 3, Ones, nil)
	require.NoError(t, err)

	_, err = d.Read(2, 0)
	assert.True(t, rlerr.IsOutOfRange(err))
	_, err = d.Read(-1, 0)
	assert.True(t, rlerr.IsOutOfRange(err))
	_, err = d.Read(0, 3)
	assert.True(t, rlerr.IsOutOfRange(err))
	assert.True(t, rlerr.IsOutOfRange(d.Write(0, -1, 1)))
	_, err = d.ValuesFor(5)
	assert.True(t, rlerr.IsOutOfRange(err))
}

func TestSparseLazyInit(t *testing.T) {
	type cell struct{ row, col int }

	s, err := NewSparse[cell](4, Ones, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	// Reading materializes the state
	v, err := s.Read(cell{1, 2}, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 1, s.Len())

	// Writing materializes the state with the other actions initialized
	require.NoError(t, s.Write(cell{0, 0}, 1, -2))
	values, err := s.ValuesFor(cell{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -2, 1, 1}, values)
	assert.Equal(t, 2, s.Len())

	_, err = s.Read(cell{0, 0}, 4)
	assert.True(t, rlerr.IsOutOfRange(err))
}

func TestConfigCreate(t *testing.T) {
	store, err := Config{Backing: SparseBacking, Init: Zeros}.Create(0, 2, 1)
	require.NoError(t, err)
	_, ok := store.(*Sparse[int])
	assert.True(t, ok)

	store, err = Config{Backing: DenseBacking, Init: Ones}.Create(3, 2, 1)
	require.NoError(t, err)
	_, ok = store.(*Dense)
	assert.True(t, ok)
	assert.Equal(t, 2, store.Actions())
}
