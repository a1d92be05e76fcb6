package diag

// Ranger is implemented by values that refer to a part of a source.
type Ranger interface {
	Range() Ranging
}

// Ranging is a byte range [From, To) of a source. Error types embed it to
// implement Ranger.
type Ranging struct {
	From int
	To   int
}

func (r Ranging) Range() Ranging { return r }

// Shift returns the range moved right by n bytes.
func (r Ranging) Shift(n int) Ranging { return Ranging{r.From + n, r.To + n} }
