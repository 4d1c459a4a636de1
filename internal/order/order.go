package order

import (
	"fmt"
	"slices"

	"github.com/seitarof/gen-webgpu-hpp/internal/model"
)

// Anomaly is a by-value dependency that does not precede its dependent.
// It only happens with cyclic or self-referencing structs.
type Anomaly struct {
	Struct     string
	Dependency string
}

func (a Anomaly) Error() string {
	return fmt.Sprintf("struct %s does not follow its by-value member type %s", a.Struct, a.Dependency)
}

// Dependencies returns the names of the structs s embeds by value, in member
// order and without duplicates. Pointers, arrays and non-struct types never
// count.
func Dependencies(s model.Struct) []string {
	var deps []string
	for _, m := range s.Members {
		if !model.IsNamed(m.Type, model.KindStruct) {
			continue
		}
		name := m.Type.(model.NamedType).Name
		if !slices.Contains(deps, name) {
			deps = append(deps, name)
		}
	}
	return deps
}

// Structs returns a permutation of structs in which every struct follows the
// structs it embeds by value, staying as close to the input order as it can.
// The input slice is left untouched.
func Structs(structs []model.Struct) []model.Struct {
	return repair(insertAfterDependencies(structs))
}

// insertAfterDependencies walks the input backwards and inserts each struct
// right after the last already placed struct it depends on, or at the front.
func insertAfterDependencies(structs []model.Struct) []model.Struct {
	sorted := make([]model.Struct, 0, len(structs))
	for _, s := range slices.Backward(structs) {
		deps := Dependencies(s)
		i := len(sorted) - 1
		for ; i >= 0; i-- {
			if slices.Contains(deps, sorted[i].Name) {
				break
			}
		}
		sorted = slices.Insert(sorted, i+1, s)
	}
	return sorted
}

// repair emits, at each step, the earliest struct of order whose known
// dependencies have all been emitted. It returns order unchanged when order is
// already valid. Structs stuck on a cycle are emitted in their current order.
func repair(order []model.Struct) []model.Struct {
	known := make(map[string]bool, len(order))
	for _, s := range order {
		known[s.Name] = true
	}

	deps := make([][]string, len(order))
	for i, s := range order {
		deps[i] = Dependencies(s)
	}

	emitted := make(map[string]bool, len(order))
	done := make([]bool, len(order))
	out := make([]model.Struct, 0, len(order))

	ready := func(i int) bool {
		for _, d := range deps[i] {
			if d != order[i].Name && known[d] && !emitted[d] {
				return false
			}
		}
		return true
	}

	for len(out) < len(order) {
		next := -1
		for i := range order {
			if !done[i] && ready(i) {
				next = i
				break
			}
		}
		if next < 0 {
			for i := range order {
				if !done[i] {
					next = i
					break
				}
			}
		}
		done[next] = true
		emitted[order[next].Name] = true
		out = append(out, order[next])
	}
	return out
}

// Verify reports every by-value dependency that does not come before its
// dependent in structs. Unknown struct names are ignored.
func Verify(structs []model.Struct) []Anomaly {
	pos := make(map[string]int, len(structs))
	for i, s := range structs {
		if _, ok := pos[s.Name]; !ok {
			pos[s.Name] = i
		}
	}

	var anomalies []Anomaly
	for i, s := range structs {
		for _, d := range Dependencies(s) {
			if j, ok := pos[d]; ok && j >= i {
				anomalies = append(anomalies, Anomaly{Struct: s.Name, Dependency: d})
			}
		}
	}
	return anomalies
}
