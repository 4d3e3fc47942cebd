package llrb

import "cmp"
import "fmt"
import "math"

import "github.com/bnclabs/llrb-index/lib"

// height of the tree cannot exceed a certain limit. For example if the
// tree holds 1-million entries, a fully balanced tree shall have a
// height of 20 levels. maxheight provide some breathing space on top
// of the ideal height.
func maxheight(entries int64) float64 {
	if entries < 5 {
		return (3 * (math.Log2(float64(entries)) + 1)) // 3x breathing space.
	}
	return 2 * math.Log2(float64(entries)) // 2x breathing space
}

// Validate walk the full tree checking the LLRB rules from sedgewick's
// paper and return vital statistics gathered during the same walk:
//
//   - Keys are in sort order, within the bounds imposed by ancestors.
//   - Red links lean left, never right.
//   - No consecutive red links along any path.
//   - Same number of black links under the left and the right child.
//   - Maintained entry count matches the reachable nodes.
//
// Validation is diagnostic only, a broken tree is reported, never
// repaired.
func (llrb *Llrb[K, V]) Validate() (Stats, error) {
	h := lib.NewhistorgramInt64(1, 256, 1)

	root := llrb.root
	blacks, count, err := validatetree(root, root.isred(), 0, 1, nil, nil, h)
	if err != nil {
		errorf("%v validate: %v\n", llrb.logprefix, err)
		return Stats{}, err
	}
	if count != llrb.n_count {
		fmsg := "%w: n_count:%v != reachable:%v"
		err := fmt.Errorf(fmsg, ErrorCountMismatch, llrb.n_count, count)
		errorf("%v validate: %v\n", llrb.logprefix, err)
		return Stats{}, err
	}
	// with the rules above intact the depth bound follows, treat a
	// violation as an impossibility.
	if count > 8 && float64(h.Max()) > maxheight(count) {
		fmsg := "validate(): max depth %v exceeds 2*log2(%v), call the programmer"
		panic(fmt.Errorf(fmsg, h.Max(), count))
	}
	return llrb.fillstats(h, blacks), nil
}

// recursively validate the tree rooted at nd. low and high carry the
// bounds imposed by ancestors, blacks the count of black links walked
// so far. Returns the black-height of the subtree, every merge point
// confirms that both children report the same figure.
func validatetree[K cmp.Ordered, V any](
	nd *node[K, V], fromred bool, blacks, depth int64,
	low, high *K, h *lib.HistogramInt64) (nblacks, count int64, err error) {

	if nd == nil {
		return blacks, 0, nil
	}

	if fromred && nd.isred() {
		fmsg := "%w: red node %v under a red link at depth %v"
		return 0, 0, fmt.Errorf(fmsg, ErrorConsecutiveReds, nd.key, depth)
	}
	if nd.right.isred() {
		fmsg := "%w: red right child %v under %v"
		return 0, 0, fmt.Errorf(fmsg, ErrorRedRightLink, nd.right.key, nd.key)
	}
	if low != nil && nd.key <= *low {
		fmsg := "%w: key %v <= ancestor %v"
		return 0, 0, fmt.Errorf(fmsg, ErrorSortOrder, nd.key, *low)
	}
	if high != nil && nd.key >= *high {
		fmsg := "%w: key %v >= ancestor %v"
		return 0, 0, fmt.Errorf(fmsg, ErrorSortOrder, nd.key, *high)
	}

	if !nd.isred() {
		blacks++
	}
	if nd.left == nil || nd.right == nil {
		h.Add(depth)
	}

	lblacks, lcount, err := validatetree(
		nd.left, nd.isred(), blacks, depth+1, low, &nd.key, h)
	if err != nil {
		return 0, 0, err
	}
	rblacks, rcount, err := validatetree(
		nd.right, nd.isred(), blacks, depth+1, &nd.key, high, h)
	if err != nil {
		return 0, 0, err
	}
	if lblacks != rblacks {
		fmsg := "%w: {%v,%v} under %v at depth %v"
		return 0, 0, fmt.Errorf(
			fmsg, ErrorUnbalancedBlacks, lblacks, rblacks, nd.key, depth)
	}
	return lblacks, lcount + rcount + 1, nil
}
