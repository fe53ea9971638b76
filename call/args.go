package call

// Tuple is an argument tuple usable as the second half of a Key. All
// implementations are comparable by value.
type Tuple interface {
	Slice() []any
	Len() int
}

type noArgs struct{}

func (noArgs) Slice() []any { return nil }
func (noArgs) Len() int     { return 0 }

// NoArgs is the tuple shared by every zero-argument call, so all zero-argument
// calls to one function land on the same key.
var NoArgs Tuple = noArgs{}

type Args1[A1 comparable] struct {
	A1 A1
}

func (t Args1[A1]) Slice() []any { return []any{t.A1} }
func (Args1[A1]) Len() int       { return 1 }

type Args2[A1, A2 comparable] struct {
	A1 A1
	A2 A2
}

func (t Args2[A1, A2]) Slice() []any { return []any{t.A1, t.A2} }
func (Args2[A1, A2]) Len() int       { return 2 }

type Args3[A1, A2, A3 comparable] struct {
	A1 A1
	A2 A2
	A3 A3
}

func (t Args3[A1, A2, A3]) Slice() []any { return []any{t.A1, t.A2, t.A3} }
func (Args3[A1, A2, A3]) Len() int       { return 3 }

type Args4[A1, A2, A3, A4 comparable] struct {
	A1 A1
	A2 A2
	A3 A3
	A4 A4
}

func (t Args4[A1, A2, A3, A4]) Slice() []any { return []any{t.A1, t.A2, t.A3, t.A4} }
func (Args4[A1, A2, A3, A4]) Len() int       { return 4 }

type Args5[A1, A2, A3, A4, A5 comparable] struct {
	A1 A1
	A2 A2
	A3 A3
	A4 A4
	A5 A5
}

func (t Args5[A1, A2, A3, A4, A5]) Slice() []any { return []any{t.A1, t.A2, t.A3, t.A4, t.A5} }
func (Args5[A1, A2, A3, A4, A5]) Len() int       { return 5 }
