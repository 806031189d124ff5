package knapsack

// branch is the expanding-core branch-and-bound.
//
// ps and ws are the profit and weight of the current solution relative to
// the greedy prefix (ws is the excess over the capacity). s is the next
// candidate for removal (left of br), t the next candidate for insertion
// (right of br).
//
//   - ws ≤ 0: the solution fits. Record it if it beats z, then try to add
//     items t, t+1, ... in efficiency order.
//   - ws > 0: the solution overflows. Try to remove items s, s-1, ...
//
// In both cases the loop stops once the bound test
//
//	det(ps−(z+1), ws, p, w) < 0
//
// fails, since all further items on that side are even less promising, or
// when the side has no more candidates. Whenever the cursor leaves the
// sorted window, expand resolves the next deferred interval.
//
// It returns true if an improved solution was found in this subtree; the
// caller then appends its own item to the change-log, so after unwinding the
// change-log holds exactly the flips along the winning path.
func (e *engine) branch(ps, ws int64, s, t int) (bool, error) {
	if err := e.budget(); err != nil {
		return false, err
	}

	var (
		improved bool
		ok       bool
		err      error
		it       item
	)

	if ws <= 0 {
		if ps > e.z {
			improved = true
			e.z = ps
			e.exc = e.exc[:0]
		}
		for {
			if t > e.lsort {
				if ok, err = e.expand(&e.right); err != nil {
					return false, err
				}
				if !ok {
					break
				}
			}
			it = e.items[t]
			if det(ps-(e.z+1), ws, it.p, it.w) < 0 {
				break
			}
			if ok, err = e.branch(ps+it.p, ws+it.w, s, t+1); err != nil {
				return false, err
			}
			if ok {
				improved = true
				e.exc = append(e.exc, it.x)
			}
			t++
		}

		return improved, nil
	}

	for {
		if s < e.fsort {
			if ok, err = e.expand(&e.left); err != nil {
				return false, err
			}
			if !ok {
				break
			}
		}
		it = e.items[s]
		if det(ps-(e.z+1), ws, it.p, it.w) < 0 {
			break
		}
		if ok, err = e.branch(ps-it.p, ws-it.w, s-1, t); err != nil {
			return false, err
		}
		if ok {
			improved = true
			e.exc = append(e.exc, it.x)
		}
		s--
	}

	return improved, nil
}
