package valuefn

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/rlagents/rlerr"
)

// Backing determines which concrete Store a Config creates
type Backing string

const (
	DenseBacking  Backing = "dense"
	SparseBacking Backing = "sparse"
)

// Config is a JSON serializable description of a Store over
// integer-enumerated states
type Config struct {
	Backing Backing
	Init    InitMethod
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	switch c.Backing {
	case DenseBacking, SparseBacking:
	default:
		return rlerr.InvalidConfig("validate", "unknown backing %q",
			c.Backing)
	}

	switch c.Init {
	case Zeros, Ones, Random:
	default:
		return rlerr.InvalidConfig("validate", "unknown init method %q",
			c.Init)
	}
	return nil
}

// Create returns the Store described by the Config. The number of
// states is ignored by the sparse backing.
func (c Config) Create(states, actions int, seed uint64) (Store[int],
	error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	src := rand.NewSource(seed)
	if c.Backing == SparseBacking {
		s, err := NewSparse[int](actions, c.Init, src)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	d, err := NewDense(states, actions, c.Init, src)
	if err != nil {
		return nil, err
	}
	return d, nil
}
