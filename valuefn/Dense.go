package valuefn

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/rlagents/rlerr"
)

// Dense implements a Store backed by a dense matrix. Rows of the matrix
// are states and columns are actions, so that states must be enumerated
// as 0, 1, ... S-1 for S states.
type Dense struct {
	values *mat.Dense
}

// NewDense returns a new Dense Store with the given number of states
// and actions, with all entries filled using method. The source src is
// only used for random initialization and may be nil otherwise.
func NewDense(states, actions int, method InitMethod,
	src rand.Source) (*Dense, error) {
	if states <= 0 {
		return nil, rlerr.InvalidConfig("newDense",
			"states must be positive (states = %d)", states)
	}
	if actions <= 0 {
		return nil, rlerr.InvalidConfig("newDense",
			"actions must be positive (actions = %d)", actions)
	}

	rand, err := newRander(method, src)
	if err != nil {
		return nil, err
	}

	values := mat.NewDense(states, actions, nil)
	fill(values.RawMatrix().Data, rand)

	return &Dense{values}, nil
}

// Read returns the value of action in state
func (d *Dense) Read(state, action int) (float64, error) {
	if err := d.check("read", state, action); err != nil {
		return 0, err
	}
	return d.values.At(state, action), nil
}

// Write sets the value of action in state
func (d *Dense) Write(state, action int, value float64) error {
	if err := d.check("write", state, action); err != nil {
		return err
	}
	d.values.Set(state, action, value)
	return nil
}

// ValuesFor returns a copy of the action values in state
func (d *Dense) ValuesFor(state int) ([]float64, error) {
	if err := d.check("valuesFor", state, 0); err != nil {
		return nil, err
	}
	return mat.Row(nil, state, d.values), nil
}

// Actions returns the number of actions in each state
func (d *Dense) Actions() int {
	_, c := d.values.Dims()
	return c
}

// States returns the number of states in the Store
func (d *Dense) States() int {
	r, _ := d.values.Dims()
	return r
}

// check returns an error if the state or action is out of bounds
func (d *Dense) check(op string, state, action int) error {
	r, c := d.values.Dims()
	if state < 0 || state >= r {
		return rlerr.OutOfRange(op, state, r)
	}
	if action < 0 || action >= c {
		return rlerr.OutOfRange(op, action, c)
	}
	return nil
}
