package combin

// Status is the verdict of a Policy on a candidate vector.
type Status int8

const (
	// Overshoot rejects the vector and promises that every vector
	// obtained by increasing its leading entries is rejected too,
	// allowing the enumeration to skip ahead.
	Overshoot Status = -1
	// Reject rejects the vector.
	Reject Status = 0
	// Accept accepts the vector.
	Accept Status = 1
)

// Policy decides whether a candidate vector is produced by an Interpolator.
type Policy func(v []int) Status

// AlwaysAccept accepts every vector.
func AlwaysAccept([]int) Status { return Accept }

// Interpolator enumerates all integer vectors v with min <= v <= max
// componentwise that satisfy a policy, in odometer order on the entries.
// Not safe for concurrent use.
type Interpolator struct {
	min, max []int
	policy   Policy
	cur      []int
	status   Status
	started  bool
	done     bool
}

// NewInterpolator returns an enumerator over the vectors between min and max
// satisfying policy. A nil policy accepts everything. The bounds must have
// the same length.
func NewInterpolator(min, max []int, policy Policy) *Interpolator {
	if len(min) != len(max) {
		panic("combin: interpolation bounds of different lengths")
	}
	if policy == nil {
		policy = AlwaysAccept
	}
	return &Interpolator{
		min:    append([]int(nil), min...),
		max:    append([]int(nil), max...),
		policy: policy,
		cur:    append([]int(nil), min...),
	}
}

// Count returns an upper bound on the number of generated vectors: the
// number of vectors in the box, ignoring the policy.
func (it *Interpolator) Count() int64 {
	if len(it.min) == 0 {
		return 0
	}
	total := int64(1)
	for i := range it.max {
		total *= int64(it.max[i] - it.min[i] + 1)
	}
	return total
}

// Next advances to the next accepted vector and reports whether one is
// available.
func (it *Interpolator) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		it.status = it.policy(it.cur)
		if it.status == Accept {
			return true
		}
	}
	return it.advance()
}

// Vector returns the current vector. The returned slice is reused by Next;
// callers that retain it must copy it.
func (it *Interpolator) Vector() []int {
	return it.cur
}

func (it *Interpolator) advance() bool {
	for {
		i := 0
		// After an overshoot the whole leading run is reset once,
		// since all larger values of the current entry are rejected.
		overshoot := it.status == Overshoot
		for i < len(it.cur) && (it.cur[i] == it.max[i] || overshoot) {
			overshoot = false
			it.cur[i] = it.min[i]
			i++
		}
		if i == len(it.cur) {
			it.done = true
			return false
		}
		it.cur[i]++
		it.status = it.policy(it.cur)
		if it.status == Accept {
			return true
		}
	}
}
