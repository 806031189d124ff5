package knapsack

// heuristic locates the break item, seeds the incumbent and writes the
// greedy baseline into sel.
//
// Steps:
//  1. Greedy fill in buffer order. After the initial partsort every item
//     before the resolved interval fits, and the interval holds the break
//     item br: the first item that no longer fits. Items before br form the
//     baseline (sel[x] = true).
//  2. Dantzig bound: psb + ⌊(c−wsb)·p_br / w_br⌋.
//  3. Lower bound z (relative to psb), best of
//     - the greedy prefix itself (z = 0),
//     - forward greedy: add one item from br on that fits the residual,
//     - backward greedy: add br and remove one earlier item to make room.
//     The change-log is set to the items flipped by the winner. A candidate
//     reaching the Dantzig gap is optimal and ends the scan.
//
// Complexity: O(n).
func (e *engine) heuristic(sel []bool) {
	var (
		n      = len(e.items)
		i      int
		ps, ws int64
		r, dz  int64
		pb     int64
	)

	ps, ws = 0, e.c
	for i = 0; i < n && e.items[i].w <= ws; i++ {
		ws -= e.items[i].w
		ps += e.items[i].p
		sel[e.items[i].x] = true
	}
	e.br, e.wsb, e.psb = i, e.c-ws, ps

	dz = (e.c - e.wsb) * e.items[e.br].p / e.items[e.br].w
	e.stats.Dantzig = e.psb + dz

	e.exc = e.exc[:0]
	e.z = 0
	if e.z == dz {
		return
	}

	// Forward greedy.
	r = e.c - e.wsb
	for i = e.br; i < n; i++ {
		if e.items[i].w <= r && e.items[i].p > e.z {
			e.exc = append(e.exc[:0], e.items[i].x)
			e.z = e.items[i].p
			if e.z == dz {
				return
			}
		}
	}

	// Backward greedy.
	r = e.wsb + e.items[e.br].w - e.c
	pb = e.items[e.br].p
	for i = e.br - 1; i >= 0; i-- {
		if e.items[i].w >= r && pb-e.items[i].p > e.z {
			e.exc = append(e.exc[:0], e.items[e.br].x, e.items[i].x)
			e.z = pb - e.items[i].p
			if e.z == dz {
				return
			}
		}
	}
}
