package combin

// Combinations enumerates all k-subsets of {0,...,n-1} as ascending index
// sequences, in lexicographic order. Not safe for concurrent use.
type Combinations struct {
	n, k    int
	cur     []int
	started bool
	done    bool
}

// NewCombinations returns an enumerator over the k-subsets of n letters.
// Returns ErrTooManyChoices if k > n or k < 0.
func NewCombinations(n, k int) (*Combinations, error) {
	if k < 0 || k > n {
		return nil, ErrTooManyChoices
	}
	c := &Combinations{n: n, k: k, cur: make([]int, k)}
	for i := range c.cur {
		c.cur[i] = i
	}
	return c, nil
}

// Count returns the total number of combinations, n choose k.
func (c *Combinations) Count() int64 {
	return Binomial(c.n, c.k)
}

// Next advances to the next combination and reports whether one is
// available. The first call yields {0,...,k-1}.
func (c *Combinations) Next() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		return true
	}
	for i := c.k - 1; i >= 0; i-- {
		if c.cur[i]-i < c.n-c.k {
			c.cur[i]++
			for j := i + 1; j < c.k; j++ {
				c.cur[j] = c.cur[j-1] + 1
			}
			return true
		}
	}
	c.done = true
	return false
}

// Combination returns the current combination. The returned slice is reused
// by Next; callers that retain it must copy it.
func (c *Combinations) Combination() []int {
	return c.cur
}

// Reset restarts the enumeration from {0,...,k-1}.
func (c *Combinations) Reset() {
	for i := range c.cur {
		c.cur[i] = i
	}
	c.started = false
	c.done = false
}

// AllCombinations returns all k-subsets of n letters in enumeration order.
func AllCombinations(n, k int) (combs [][]int, err error) {
	c, err := NewCombinations(n, k)
	if err != nil {
		return nil, err
	}
	combs = make([][]int, 0, c.Count())
	for c.Next() {
		combs = append(combs, append([]int(nil), c.Combination()...))
	}
	return
}
