package hypergrasp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// tokenScanner reads whitespace-delimited integer tokens from an instance
// file, matching the original reference format: operator>> over a stream
// with no line-oriented structure.
type tokenScanner struct {
	scanner *bufio.Scanner
}

func newTokenScanner(r io.Reader) *tokenScanner {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &tokenScanner{scanner: s}
}

// next reports whether another token is available, mirroring the original
// parser's is.eof() checks used to detect an optional trailing section.
func (t *tokenScanner) next() bool {
	return t.scanner.Scan()
}

func (t *tokenScanner) int64() (int64, error) {
	v, err := strconv.ParseInt(t.scanner.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: malformed integer %q: %v", ErrUserInput, t.scanner.Text(), err)
	}
	return v, nil
}

func (t *tokenScanner) int32() (int32, error) {
	v, err := t.int64()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func (t *tokenScanner) requireInt64() (int64, error) {
	if !t.next() {
		return 0, fmt.Errorf("%w: unexpected end of instance file", ErrUserInput)
	}
	return t.int64()
}

func (t *tokenScanner) requireInt32() (int32, error) {
	v, err := t.requireInt64()
	return int32(v), err
}

// readSolutionSet reads a count followed by count*arity integers, the
// format used by both instance formats for their optional trailing sets.
func readSolutionSet(t *tokenScanner, arity int32) ([]Solution, error) {
	n, err := t.requireInt32()
	if err != nil {
		return nil, err
	}
	set := make([]Solution, n)
	for i := int32(0); i < n; i++ {
		sol := make(Solution, arity)
		for j := int32(0); j < arity; j++ {
			v, err := t.requireInt64()
			if err != nil {
				return nil, err
			}
			sol[j] = v
		}
		set[i] = sol
	}
	return set, nil
}

// MOKPInstance is the parsed content of an MOKP instance file: item count,
// objective arity, capacity, the items themselves, and an optional
// ground-truth non-dominated set appended after the item table.
type MOKPInstance struct {
	N               int32
	M               int32
	Capacity        int64
	Items           []Item
	NonDominatedSet []Solution
}

// ParseMOKPInstance reads an MOKP instance: "N M W", then N lines of
// "weight value_1 ... value_M", then an optional "n_nondominated" followed
// by n_nondominated*M integers.
func ParseMOKPInstance(r io.Reader) (*MOKPInstance, error) {
	t := newTokenScanner(r)

	n, err := t.requireInt32()
	if err != nil {
		return nil, fmt.Errorf("%w: reading item count: %v", ErrUserInput, err)
	}
	m, err := t.requireInt32()
	if err != nil {
		return nil, fmt.Errorf("%w: reading objective count: %v", ErrUserInput, err)
	}
	w, err := t.requireInt64()
	if err != nil {
		return nil, fmt.Errorf("%w: reading capacity: %v", ErrUserInput, err)
	}

	items := make([]Item, n)
	for i := int32(0); i < n; i++ {
		weight, err := t.requireInt64()
		if err != nil {
			return nil, fmt.Errorf("%w: reading item %d weight: %v", ErrUserInput, i, err)
		}
		values := make([]int64, m)
		for j := int32(0); j < m; j++ {
			v, err := t.requireInt64()
			if err != nil {
				return nil, fmt.Errorf("%w: reading item %d value %d: %v", ErrUserInput, i, j, err)
			}
			values[j] = v
		}
		items[i] = Item{ID: i, Weight: weight, Values: values}
	}

	var nonDominated []Solution
	if t.next() {
		v, err := t.int32()
		if err != nil {
			return nil, err
		}
		set := make([]Solution, v)
		for i := int32(0); i < v; i++ {
			sol := make(Solution, m)
			for j := int32(0); j < m; j++ {
				val, err := t.requireInt64()
				if err != nil {
					return nil, err
				}
				sol[j] = val
			}
			set[i] = sol
		}
		nonDominated = set
	}

	return &MOKPInstance{N: n, M: m, Capacity: w, Items: items, NonDominatedSet: nonDominated}, nil
}

// MOMSTInstance is the parsed content of an MOMST instance file: vertex
// count, edges of a complete graph, and optional ground-truth supported and
// non-dominated sets.
type MOMSTInstance struct {
	V               int32
	M               int32
	Edges           []Edge
	SupportedSet    []Solution
	NonDominatedSet []Solution
}

// ParseMOMSTInstance reads an MOMST instance: "V", then one line per edge
// of the implied complete graph (V*(V-1)/2 edges) as "src dst value_1
// value_2", then optionally a supported-set block followed by a
// non-dominated-set block, each "count" then count*2 integers.
func ParseMOMSTInstance(r io.Reader) (*MOMSTInstance, error) {
	const m = 2 // the reference format only defines the M=2 reference-point case
	t := newTokenScanner(r)

	v, err := t.requireInt32()
	if err != nil {
		return nil, fmt.Errorf("%w: reading vertex count: %v", ErrUserInput, err)
	}
	e := (v * (v - 1)) / 2

	edges := make([]Edge, e)
	for i := int32(0); i < e; i++ {
		src, err := t.requireInt32()
		if err != nil {
			return nil, fmt.Errorf("%w: reading edge %d source: %v", ErrUserInput, i, err)
		}
		dst, err := t.requireInt32()
		if err != nil {
			return nil, fmt.Errorf("%w: reading edge %d destination: %v", ErrUserInput, i, err)
		}
		values := make([]int64, m)
		for j := 0; j < m; j++ {
			val, err := t.requireInt64()
			if err != nil {
				return nil, fmt.Errorf("%w: reading edge %d value %d: %v", ErrUserInput, i, j, err)
			}
			values[j] = val
		}
		edges[i] = Edge{ID: i, Src: src, Dst: dst, Values: values}
	}

	var supported, nonDominated []Solution
	if t.next() {
		n, err := t.int32()
		if err != nil {
			return nil, err
		}
		supported, err = readCountedSet(t, n, int32(m))
		if err != nil {
			return nil, err
		}
		nonDominated, err = readSolutionSet(t, int32(m))
		if err != nil {
			return nil, err
		}
	}

	return &MOMSTInstance{V: v, M: int32(m), Edges: edges, SupportedSet: supported, NonDominatedSet: nonDominated}, nil
}

// readCountedSet reads count*arity integers given an already-consumed count.
func readCountedSet(t *tokenScanner, count, arity int32) ([]Solution, error) {
	set := make([]Solution, count)
	for i := int32(0); i < count; i++ {
		sol := make(Solution, arity)
		for j := int32(0); j < arity; j++ {
			v, err := t.requireInt64()
			if err != nil {
				return nil, err
			}
			sol[j] = v
		}
		set[i] = sol
	}
	return set, nil
}
