package llrb

import "cmp"

type ientry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// Iterator is a lazy, restartable traversal over a subset of the
// index. Every refill fetches a batch of at most "maxlimit" entries
// and remembers the last key handed out, so a traversal never holds
// more than one batch in memory. The tree must not be mutated while
// an iterator is active.
type Iterator[K cmp.Ordered, V any] struct {
	llrb    *Llrb[K, V]
	root    *node[K, V]
	batch   []ientry[K, V]
	index   int
	low     *K
	high    *K
	lincl   bool
	hincl   bool
	reverse bool
	fin     bool
	closed  bool
}

// Iterate over entries between low and high, in ascending order, or
// descending order when reverse is true. A nil bound means the range
// is open on that side, incl takes "both", "low", "high" or "none".
// Close the iterator after use, iterators are pooled per instance.
func (llrb *Llrb[K, V]) Iterate(
	low, high *K, incl string, reverse bool) *Iterator[K, V] {

	lincl, hincl := inclbounds(incl)

	var iter *Iterator[K, V]
	select {
	case iter = <-llrb.iterpool:
	default:
		iter = &Iterator[K, V]{
			batch: make([]ientry[K, V], 0, llrb.maxlimit),
		}
	}
	iter.llrb, iter.root = llrb, llrb.root
	iter.batch, iter.index = iter.batch[:0], 0
	iter.low, iter.high = low, high
	iter.lincl, iter.hincl = lincl, hincl
	iter.reverse, iter.fin, iter.closed = reverse, false, false

	llrb.n_ranges++
	llrb.n_activeiter++
	return iter
}

// Next entry in the iteration, ok is false once the traversal is
// exhausted.
func (iter *Iterator[K, V]) Next() (key K, value V, ok bool) {
	if iter.closed {
		panic("cannot iterate over a closed iterator")
	}
	if iter.fin {
		return key, value, false
	}

	if iter.index >= len(iter.batch) {
		iter.refill()
		if len(iter.batch) == 0 {
			iter.fin = true
			return key, value, false
		}
	}

	entry := iter.batch[iter.index]
	iter.index++
	return entry.key, entry.value, true
}

// Close this iterator and return it to the instance's pool.
func (iter *Iterator[K, V]) Close() {
	if iter.closed {
		return
	}
	llrb := iter.llrb
	iter.closed, iter.fin = true, true
	iter.llrb, iter.root = nil, nil
	iter.batch, iter.index = iter.batch[:0], 0
	iter.low, iter.high = nil, nil

	llrb.n_activeiter--
	select {
	case llrb.iterpool <- iter:
	default: // let iter be collected by GC
	}
}

// refill the batch with the next limit entries and remember the last
// key handed out as the new exclusive bound for the next refill.
func (iter *Iterator[K, V]) refill() {
	limit := int(iter.llrb.maxlimit)
	iter.batch, iter.index = iter.batch[:0], 0

	callb := func(key K, value V) bool {
		iter.batch = append(iter.batch, ientry[K, V]{key, value})
		return len(iter.batch) < limit
	}
	if iter.reverse {
		dorangeback(iter.root, iter.low, iter.high, iter.lincl, iter.hincl, callb)
	} else {
		dorange(iter.root, iter.low, iter.high, iter.lincl, iter.hincl, callb)
	}

	if n := len(iter.batch); n > 0 {
		lastkey := iter.batch[n-1].key
		if iter.reverse {
			iter.high, iter.hincl = &lastkey, false
		} else {
			iter.low, iter.lincl = &lastkey, false
		}
	}
}
