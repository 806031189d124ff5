package knapsack

// partsort partially sorts items[f..l] by non-increasing efficiency.
//
// The range is partitioned around a median-of-three pivot (Hoare scheme,
// cross-product comparisons). wi accumulates the weight of the left part on
// top of ws, the weight already placed before f. If the left part overflows
// the capacity, the break item lies in it: the right part is deferred on the
// right stack and the left part is refined. Otherwise the left part is
// deferred on the left stack and the right part is refined. A range of at
// most three items is sorted in place and stored in e.s.
//
// On return every deferred interval is separated from e.s by efficiency:
// items in intervals left of e.s are at least as efficient as any item of
// e.s, items in intervals right of it at most as efficient.
//
// Complexity: O(l-f) expected; only one part is descended at each level.
func (e *engine) partsort(f, l int, ws int64) error {
	var (
		d, i, j, m int
		mp, mw, wi int64
		err        error
	)
	for {
		d = l - f + 1
		m = f + d/2
		if d > 1 {
			if e.cmp(f, m) < 0 {
				e.swap(f, m)
			}
			if d > 2 && e.cmp(m, l) < 0 {
				e.swap(m, l)
				if e.cmp(f, m) < 0 {
					e.swap(f, m)
				}
			}
		}
		if d <= 3 {
			e.s = interval{f: f, l: l, ws: ws}

			return nil
		}

		// items[f] ≥ pivot ≥ items[l] act as sentinels for both scans.
		mp, mw = e.items[m].p, e.items[m].w
		i, j, wi = f, l, ws
		for {
			for {
				wi += e.items[i].w
				i++
				if det(e.items[i].p, e.items[i].w, mp, mw) <= 0 {
					break
				}
			}
			for {
				j--
				if det(e.items[j].p, e.items[j].w, mp, mw) >= 0 {
					break
				}
			}
			if i > j {
				break
			}
			e.swap(i, j)
		}

		if wi > e.c {
			if err = e.right.push(interval{f: i, l: l, ws: wi}); err != nil {
				return err
			}
			l = i - 1
		} else {
			if err = e.left.push(interval{f: f, l: i - 1, ws: ws}); err != nil {
				return err
			}
			f, ws = i, wi
		}
	}
}

// expand widens the sorted window on one side by resolving the most
// recently deferred interval of st. It reports false when st is empty, which
// means that side has no candidates left.
func (e *engine) expand(st *intervalStack) (bool, error) {
	iv, ok := st.pop()
	if !ok {
		return false, nil
	}
	e.stats.Expansions++

	f, l := e.reduce(iv.f, iv.l)
	if err := e.partsort(f, l, iv.ws); err != nil {
		return false, err
	}
	if e.s.f < e.fsort {
		e.fsort = e.s.f
	}
	if e.s.l > e.lsort {
		e.lsort = e.s.l
	}

	return true, nil
}
