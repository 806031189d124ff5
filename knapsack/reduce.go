package knapsack

// reduce filters the deferred interval [f, l] before it is sorted.
//
// An item can only take part in an improving solution if its efficiency
// bound, measured against the break item, reaches z+1. Items failing the
// test are left behind; the survivors are packed against the sorted window
// (ending at fsort-1 on the left side, starting at lsort+1 on the right side)
// so that the returned range is contiguous with it. If no item survives, the
// item found at the outer end of the range is kept anyway so that expansion
// always makes progress.
//
// Complexity: O(l-f+1) plus O(gap) swaps, no allocation.
func (e *engine) reduce(f, l int) (int, int) {
	var (
		pb = e.items[e.br].p
		wb = e.items[e.br].w
		q  = det(e.z+1, e.c-e.wsb, pb, wb)
		i  = f
		j  = l
		k  int
	)

	if i <= e.br {
		// Left side: the test is for removing the item.
		k = e.fsort - 1
		for i <= j {
			e.stats.Touched++
			if det(-e.items[j].p, -e.items[j].w, pb, wb) < q {
				e.stats.Reduced++
				e.swap(i, j)
				i++
			} else {
				e.swap(j, k)
				j--
				k--
			}
		}
		if k == e.fsort-1 {
			e.swap(f, k)
			k--
		}

		return k + 1, e.fsort - 1
	}

	// Right side: the test is for adding the item.
	k = e.lsort + 1
	for i <= j {
		e.stats.Touched++
		if det(e.items[i].p, e.items[i].w, pb, wb) < q {
			e.stats.Reduced++
			e.swap(i, j)
			j--
		} else {
			e.swap(i, k)
			i++
			k++
		}
	}
	if k == e.lsort+1 {
		e.swap(l, k)
		k++
	}

	return e.lsort + 1, k - 1
}
