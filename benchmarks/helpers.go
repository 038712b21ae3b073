// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"
	"strconv"

	"github.com/comalice/listx"
	"github.com/comalice/listx/internal/script"
	"gopkg.in/yaml.v3"
)

// GenList creates a list holding 0..n-1.
func GenList(n int) *listx.List[int] {
	if n < 0 {
		n = 0
	}
	l := listx.New[int]()
	for i := 0; i < n; i++ {
		l.Add(i)
	}
	return l
}

// GenChurnedList creates a list of n elements whose slots have been freed and
// reused, so chain order no longer matches slot order.
func GenChurnedList(n int) *listx.List[int] {
	l := GenList(n)
	for i := 0; i < n/2; i++ {
		_ = l.RemoveAt(0)
		_ = l.Insert(l.Len()/2, -i)
	}
	return l
}

// GenScriptYAML generates YAML bytes for a script of n insert/at/remove_at steps over a seed of n values.
func GenScriptYAML(n int) []byte {
	if n < 1 {
		n = 1
	}
	s := script.Script{
		Name: fmt.Sprintf("gen_%d", n),
		Seed: make([]string, n),
	}
	for i := 0; i < n; i++ {
		s.Seed[i] = strconv.Itoa(i)
		idx := i
		s.Steps = append(s.Steps,
			script.Step{Op: script.OpInsert, Index: &idx, Value: "x"},
			script.Step{Op: script.OpAt, Index: &idx},
			script.Step{Op: script.OpRemoveAt, Index: &idx},
		)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		panic(err)
	}
	return data
}
