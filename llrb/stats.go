package llrb

import "cmp"

import "github.com/bnclabs/llrb-index/lib"

// counters maintained by every Llrb instance, all of them are served
// through Stats().
type llrbstats struct {
	n_count      int64 // number of entries in the tree
	n_inserts    int64
	n_updates    int64
	n_deletes    int64
	n_lookups    int64
	n_ranges     int64
	n_activeiter int64
}

// Stats vital statistics for an Llrb instance. Depth figures describe
// the distribution of root-to-leaf path lengths, where every node
// terminating at least one path contributes its depth.
type Stats struct {
	Entries int64
	Blacks  int64 // black links per root-to-leaf path

	MinDepth  int64
	MeanDepth int64
	MaxDepth  int64
	SDDepth   int64
	// depth below which the named fraction of leaves fall,
	// percentiles reported: 80, 90, 95, 96, 97, 98, 99.
	DepthPercentiles map[int]int64

	Lookups int64
	Ranges  int64
	Inserts int64
	Updates int64
	Deletes int64
}

var depthfracs = []float64{.8, .9, .95, .96, .97, .98, .99}

// Stats walk the tree and return vital statistics, without verifying
// the tree's invariants. Use Validate() for a verifying walk.
func (llrb *Llrb[K, V]) Stats() Stats {
	h := lib.NewhistorgramInt64(1, 256, 1)
	depthsample(llrb.root, 1, h)

	blacks := int64(0)
	for nd := llrb.root; nd != nil; nd = nd.left {
		if !nd.isred() {
			blacks++
		}
	}
	return llrb.fillstats(h, blacks)
}

func (llrb *Llrb[K, V]) fillstats(h *lib.HistogramInt64, blacks int64) Stats {
	stats := Stats{
		Entries:          llrb.n_count,
		Blacks:           blacks,
		MinDepth:         h.Min(),
		MeanDepth:        h.Mean(),
		MaxDepth:         h.Max(),
		SDDepth:          h.SD(),
		DepthPercentiles: make(map[int]int64),
		Lookups:          llrb.n_lookups,
		Ranges:           llrb.n_ranges,
		Inserts:          llrb.n_inserts,
		Updates:          llrb.n_updates,
		Deletes:          llrb.n_deletes,
	}
	for _, frac := range depthfracs {
		stats.DepthPercentiles[int(frac*100+0.5)] = h.Percentile(frac)
	}
	return stats
}

// a node missing a child terminates at least one root-to-leaf path,
// sample its depth.
func depthsample[K cmp.Ordered, V any](
	nd *node[K, V], depth int64, h *lib.HistogramInt64) {

	if nd == nil {
		return
	}
	if nd.left == nil || nd.right == nil {
		h.Add(depth)
	}
	depthsample(nd.left, depth+1, h)
	depthsample(nd.right, depth+1, h)
}
