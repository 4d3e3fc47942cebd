package llrb

import "errors"

// ErrorActiveIterators returned by Destroy() when iterators are
// still active on the index.
var ErrorActiveIterators = errors.New("llrb.activeiterators")

// ErrorSortOrder returned by Validate() when a key falls outside
// the bounds imposed by its ancestors.
var ErrorSortOrder = errors.New("llrb.sortorder")

// ErrorRedRightLink returned by Validate() when a red link leans
// to the right.
var ErrorRedRightLink = errors.New("llrb.redrightlink")

// ErrorConsecutiveReds returned by Validate() when two red links
// appear in a row along a path.
var ErrorConsecutiveReds = errors.New("llrb.consecutivereds")

// ErrorUnbalancedBlacks returned by Validate() when two sibling
// paths carry a different number of black links.
var ErrorUnbalancedBlacks = errors.New("llrb.unbalancedblacks")

// ErrorCountMismatch returned by Validate() when the maintained
// entry count does not match the number of reachable nodes.
var ErrorCountMismatch = errors.New("llrb.countmismatch")
