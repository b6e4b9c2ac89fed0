package core

// PathExists reports whether a ball at from can travel to to through
// orthogonally adjacent empty cells. The destination must be empty; the
// source may be occupied and acts as the starting node. Diagonal steps are
// never allowed.
//
// The search is an iterative depth-first traversal bounded by size² cells.
func (b *Board) PathExists(from, to Coord) bool {
	if !b.InBounds(from) || !b.InBounds(to) {
		return false
	}
	if b.cells[b.index(to)].Filled {
		return false
	}
	if from == to {
		return true
	}

	visited := make([]bool, len(b.cells))
	visited[b.index(from)] = true
	stack := make([]Coord, 0, len(b.cells))
	stack = append(stack, from)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range neighbors4 {
			next := cur.Add(d[0], d[1])
			if !b.InBounds(next) {
				continue
			}
			i := b.index(next)
			if visited[i] || b.cells[i].Filled {
				continue
			}
			if next == to {
				return true
			}
			visited[i] = true
			stack = append(stack, next)
		}
	}
	return false
}
