package testutil

import (
	"fmt"
	"math/rand/v2"
)

// Op is one randomly generated operation applied to a SequenceAdapter.
type Op struct {
	Name  string
	Index int
	Value int
}

func (o Op) String() string { return fmt.Sprintf("%s(%d, %d)", o.Name, o.Index, o.Value) }

// Outcome is what applying an Op observed: a value, a flag and an error string.
type Outcome struct {
	Value int
	Flag  bool
	Err   string
}

// RandomOps returns n operations with indices that are sometimes out of range,
// drawn deterministically from seed.
func RandomOps(seed uint64, n int) []Op {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	names := []string{"add", "insert", "set", "at", "remove_at", "remove", "index_of", "contains", "clear"}
	ops := make([]Op, n)
	for i := range ops {
		name := names[r.IntN(len(names))]
		// Clear is rare so sequences get long enough to exercise both halves.
		if name == "clear" && r.IntN(10) != 0 {
			name = "add"
		}
		ops[i] = Op{Name: name, Index: r.IntN(40) - 2, Value: r.IntN(16)}
	}
	return ops
}

// Apply runs op against s and returns what it observed.
func Apply(s SequenceAdapter[int], op Op) Outcome {
	errString := func(err error) string {
		if err == nil {
			return ""
		}
		return err.Error()
	}
	switch op.Name {
	case "add":
		s.Add(op.Value)
		return Outcome{}
	case "insert":
		return Outcome{Err: errString(s.Insert(op.Index, op.Value))}
	case "set":
		return Outcome{Err: errString(s.Set(op.Index, op.Value))}
	case "at":
		v, err := s.At(op.Index)
		return Outcome{Value: v, Err: errString(err)}
	case "remove_at":
		return Outcome{Err: errString(s.RemoveAt(op.Index))}
	case "remove":
		return Outcome{Flag: s.Remove(op.Value)}
	case "index_of":
		return Outcome{Value: s.IndexOf(op.Value)}
	case "contains":
		return Outcome{Flag: s.Contains(op.Value)}
	case "clear":
		s.Clear()
		return Outcome{}
	default:
		panic("testutil: unknown op " + op.Name)
	}
}
