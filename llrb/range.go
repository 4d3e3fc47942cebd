package llrb

import "cmp"

// Range over entries between low and high, calling callb for every
// entry. Iteration stops early when callb returns false. A nil bound
// means the range is open on that side. incl specifies which bounds
// are inclusive and can be "both", "low", "high" or "none"; entries
// are visited in ascending key order, or descending order when
// reverse is true.
func (llrb *Llrb[K, V]) Range(
	low, high *K, incl string, reverse bool, callb func(K, V) bool) {

	lincl, hincl := inclbounds(incl)
	llrb.n_ranges++
	if reverse {
		dorangeback(llrb.root, low, high, lincl, hincl, callb)
		return
	}
	dorange(llrb.root, low, high, lincl, hincl, callb)
}

func inclbounds(incl string) (lincl, hincl bool) {
	switch incl {
	case "both":
		return true, true
	case "low":
		return true, false
	case "high":
		return false, true
	case "none":
		return false, false
	}
	panic(`incl should be "both", "low", "high" or "none"`)
}

// key is below the low bound, exclusive of the subtree rooted there.
func belowlow[K cmp.Ordered](key K, low *K, lincl bool) bool {
	if low == nil {
		return false
	}
	if lincl {
		return key < *low
	}
	return key <= *low
}

// key is above the high bound.
func abovehigh[K cmp.Ordered](key K, high *K, hincl bool) bool {
	if high == nil {
		return false
	}
	if hincl {
		return key > *high
	}
	return key >= *high
}

func dorange[K cmp.Ordered, V any](
	nd *node[K, V], low, high *K,
	lincl, hincl bool, callb func(K, V) bool) bool {

	if nd == nil {
		return true
	}
	if belowlow(nd.key, low, lincl) {
		return dorange(nd.right, low, high, lincl, hincl, callb)
	}
	if abovehigh(nd.key, high, hincl) {
		return dorange(nd.left, low, high, lincl, hincl, callb)
	}
	if !dorange(nd.left, low, high, lincl, hincl, callb) {
		return false
	}
	if !callb(nd.key, nd.value) {
		return false
	}
	return dorange(nd.right, low, high, lincl, hincl, callb)
}

func dorangeback[K cmp.Ordered, V any](
	nd *node[K, V], low, high *K,
	lincl, hincl bool, callb func(K, V) bool) bool {

	if nd == nil {
		return true
	}
	if abovehigh(nd.key, high, hincl) {
		return dorangeback(nd.left, low, high, lincl, hincl, callb)
	}
	if belowlow(nd.key, low, lincl) {
		return dorangeback(nd.right, low, high, lincl, hincl, callb)
	}
	if !dorangeback(nd.right, low, high, lincl, hincl, callb) {
		return false
	}
	if !callb(nd.key, nd.value) {
		return false
	}
	return dorangeback(nd.left, low, high, lincl, hincl, callb)
}
