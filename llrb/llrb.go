package llrb

import "cmp"
import "fmt"
import "io"
import "strings"

import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

import "github.com/bnclabs/llrb-index/lib"

// Llrb manage a single instance of in-memory sorted index using
// left-leaning-red-black tree. Instances are not safe for concurrent
// access, a single logical owner shall serialize all mutations and
// shall not mutate the tree while an iteration is in progress.
type Llrb[K cmp.Ordered, V any] struct {
	llrbstats

	h_upsertdepth *lib.HistogramInt64

	name string
	root *node[K, V]
	dead bool

	iterpool chan *Iterator[K, V]

	// settings
	iterpoolsize int64 // iterpool.size
	maxlimit     int64 // maxlimit
	setts        s.Settings
	logprefix    string
}

// NewLlrb a new instance of in-memory sorted index.
func NewLlrb[K cmp.Ordered, V any](name string, setts s.Settings) *Llrb[K, V] {
	llrb := &Llrb[K, V]{name: name}
	llrb.logprefix = fmt.Sprintf("LLRB [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	llrb.readsettings(setts)
	llrb.setts = setts

	llrb.iterpool = make(chan *Iterator[K, V], llrb.iterpoolsize)
	llrb.h_upsertdepth = lib.NewhistorgramInt64(1, 256, 1)

	infof("%v started ...\n", llrb.logprefix)
	return llrb
}

// LoadFrom a new instance of in-memory sorted index, populated with
// entries pulled from feed. Feed shall return false when exhausted.
func LoadFrom[K cmp.Ordered, V any](
	name string, setts s.Settings, feed func() (K, V, bool)) *Llrb[K, V] {

	llrb := NewLlrb[K, V](name, setts)
	for key, value, ok := feed(); ok; key, value, ok = feed() {
		llrb.Set(key, value)
	}
	infof("%v loaded %v entries\n", llrb.logprefix, llrb.Count())
	return llrb
}

// ID to identify this instance. Applications can choose unique names
// while creating Llrb instances.
func (llrb *Llrb[K, V]) ID() string {
	return llrb.name
}

// Count return the number of entries indexed by this instance.
func (llrb *Llrb[K, V]) Count() int64 {
	return llrb.n_count
}

// Clone an exact copy of this instance, under a new name.
func (llrb *Llrb[K, V]) Clone(name string) *Llrb[K, V] {
	newllrb := NewLlrb[K, V](name, llrb.setts)
	newllrb.root = llrb.root.clonetree()
	newllrb.n_count = llrb.n_count
	return newllrb
}

// Destroy this instance, releasing the node tree. Concurrent iterators
// shall be closed before destroying the index.
func (llrb *Llrb[K, V]) Destroy() error {
	if llrb.n_activeiter > 0 {
		return ErrorActiveIterators
	}
	if llrb.dead {
		panic("Destroy(): already dead tree")
	}
	llrb.root, llrb.setts, llrb.dead = nil, nil, true
	infof("%v destroyed\n", llrb.logprefix)
	return nil
}

// Dotdump to convert whole tree into dot script that can be visualized
// using graphviz.
func (llrb *Llrb[K, V]) Dotdump(buffer io.Writer) {
	lines := []string{
		"digraph llrb {",
		"  node[shape=record];\n",
		"}",
	}
	buffer.Write([]byte(strings.Join(lines[:len(lines)-1], "\n")))
	llrb.root.dotdump(buffer)
	buffer.Write([]byte(lines[len(lines)-1]))
}

// Log vital statistics via the package logger.
func (llrb *Llrb[K, V]) Log() {
	stats := llrb.Stats()
	fmsg := "%v entries: %v depth: {%v %v %v min/mean/max}\n"
	infof(
		fmsg, llrb.logprefix, humanize.Comma(stats.Entries),
		stats.MinDepth, stats.MeanDepth, stats.MaxDepth)
	fmsg = "%v lookups: %v ranges: %v writes: {%v %v %v ins/upd/del}\n"
	infof(
		fmsg, llrb.logprefix, humanize.Comma(stats.Lookups),
		humanize.Comma(stats.Ranges), humanize.Comma(stats.Inserts),
		humanize.Comma(stats.Updates), humanize.Comma(stats.Deletes))
}

//---- read operations.

// Get the value for key, if key is indexed.
func (llrb *Llrb[K, V]) Get(key K) (value V, ok bool) {
	llrb.n_lookups++
	nd := llrb.root
	for nd != nil {
		if key < nd.key {
			nd = nd.left
		} else if nd.key < key {
			nd = nd.right
		} else {
			return nd.value, true
		}
	}
	return value, false
}

// Min return the entry with the smallest key.
func (llrb *Llrb[K, V]) Min() (key K, value V, ok bool) {
	llrb.n_lookups++
	nd := llrb.root
	if nd == nil {
		return key, value, false
	}
	for nd.left != nil {
		nd = nd.left
	}
	return nd.key, nd.value, true
}

// Max return the entry with the largest key.
func (llrb *Llrb[K, V]) Max() (key K, value V, ok bool) {
	llrb.n_lookups++
	nd := llrb.root
	if nd == nil {
		return key, value, false
	}
	for nd.right != nil {
		nd = nd.right
	}
	return nd.key, nd.value, true
}

//---- write operations.

// Set a key, value entry in the index. If key is already present its
// value is overwritten and the old value is returned.
func (llrb *Llrb[K, V]) Set(key K, value V) (old V, ok bool) {
	root, old, ok := llrb.upsert(llrb.root, 1 /*depth*/, key, value)
	root.setblack()
	llrb.root = root
	if ok {
		llrb.n_updates++
	} else {
		llrb.n_count++
		llrb.n_inserts++
	}
	return old, ok
}

// returns root, oldvalue, updated
func (llrb *Llrb[K, V]) upsert(
	nd *node[K, V], depth int64, key K, value V) (*node[K, V], V, bool) {

	var old V
	var ok bool

	if nd == nil {
		llrb.h_upsertdepth.Add(depth)
		return newnode(key, value), old, false
	}

	nd = llrb.walkdownrot23(nd)

	if key < nd.key {
		nd.left, old, ok = llrb.upsert(nd.left, depth+1, key, value)
	} else if nd.key < key {
		nd.right, old, ok = llrb.upsert(nd.right, depth+1, key, value)
	} else {
		old, nd.value, ok = nd.value, value, true
		llrb.h_upsertdepth.Add(depth)
	}

	return llrb.walkuprot23(nd), old, ok
}

// Delete key from this instance and return its value. If key is not
// present the tree is left unchanged.
func (llrb *Llrb[K, V]) Delete(key K) (old V, ok bool) {
	root, deleted := llrb.delete(llrb.root, key)
	if root != nil {
		root.setblack()
	}
	llrb.root = root
	if deleted == nil {
		return old, false
	}
	llrb.n_count--
	llrb.n_deletes++
	return deleted.value, true
}

func (llrb *Llrb[K, V]) delete(
	nd *node[K, V], key K) (newnd, deleted *node[K, V]) {

	if nd == nil {
		return nil, nil
	}

	if key < nd.key {
		if nd.left == nil { // key not present. Nothing to delete
			return nd, nil
		}
		if !nd.left.isred() && !nd.left.left.isred() {
			nd = llrb.moveredleft(nd)
		}
		nd.left, deleted = llrb.delete(nd.left, key)

	} else {
		if nd.left.isred() {
			nd = llrb.rotateright(nd)
		}
		// if key equals current node and no right children
		if !(nd.key < key) && nd.right == nil {
			return nil, nd
		}
		if nd.right != nil && !nd.right.isred() && !nd.right.left.isred() {
			nd = llrb.moveredright(nd)
		}
		// if key equals current node, and (from above) nd.right != nil
		if !(nd.key < key) {
			var subdeleted *node[K, V]
			nd.right, subdeleted = llrb.deletemin(nd.right)
			if subdeleted == nil {
				panic("delete(): fatal logic, call the programmer")
			}
			newnd := subdeleted.clonedetach()
			newnd.left, newnd.right = nd.left, nd.right
			newnd.black = nd.black
			deleted, nd = nd, newnd
		} else { // key is bigger than current node
			nd.right, deleted = llrb.delete(nd.right, key)
		}
	}
	return llrb.fixup(nd), deleted
}

// DeleteMin delete the entry with the smallest key and return it.
func (llrb *Llrb[K, V]) DeleteMin() (key K, value V, ok bool) {
	root, deleted := llrb.deletemin(llrb.root)
	if root != nil {
		root.setblack()
	}
	llrb.root = root
	if deleted == nil {
		return key, value, false
	}
	llrb.n_count--
	llrb.n_deletes++
	return deleted.key, deleted.value, true
}

// using 2-3 trees
func (llrb *Llrb[K, V]) deletemin(
	nd *node[K, V]) (newnd, deleted *node[K, V]) {

	if nd == nil {
		return nil, nil
	}
	if nd.left == nil {
		return nil, nd
	}
	if !nd.left.isred() && !nd.left.left.isred() {
		nd = llrb.moveredleft(nd)
	}
	nd.left, deleted = llrb.deletemin(nd.left)
	return llrb.fixup(nd), deleted
}

// DeleteMax delete the entry with the largest key and return it.
func (llrb *Llrb[K, V]) DeleteMax() (key K, value V, ok bool) {
	root, deleted := llrb.deletemax(llrb.root)
	if root != nil {
		root.setblack()
	}
	llrb.root = root
	if deleted == nil {
		return key, value, false
	}
	llrb.n_count--
	llrb.n_deletes++
	return deleted.key, deleted.value, true
}

// using 2-3 trees
func (llrb *Llrb[K, V]) deletemax(
	nd *node[K, V]) (newnd, deleted *node[K, V]) {

	if nd == nil {
		return nil, nil
	}
	if nd.left.isred() {
		nd = llrb.rotateright(nd)
	}
	if nd.right == nil {
		return nil, nd
	}
	if !nd.right.isred() && !nd.right.left.isred() {
		nd = llrb.moveredright(nd)
	}
	nd.right, deleted = llrb.deletemax(nd.right)
	return llrb.fixup(nd), deleted
}

//---- rotation routines for 2-3 algorithm.

func (llrb *Llrb[K, V]) walkdownrot23(nd *node[K, V]) *node[K, V] {
	return nd
}

func (llrb *Llrb[K, V]) walkuprot23(nd *node[K, V]) *node[K, V] {
	if nd.right.isred() && !nd.left.isred() {
		nd = llrb.rotateleft(nd)
	}
	if nd.left.isred() && nd.left.left.isred() {
		nd = llrb.rotateright(nd)
	}
	if nd.left.isred() && nd.right.isred() {
		llrb.flip(nd)
	}
	return nd
}

func (llrb *Llrb[K, V]) rotateleft(nd *node[K, V]) *node[K, V] {
	y := nd.right
	if y.isblack() {
		panic("rotateleft(): rotating a black link ? call the programmer")
	}
	nd.right = y.left
	y.left = nd
	y.black = nd.black
	nd.setred()
	return y
}

func (llrb *Llrb[K, V]) rotateright(nd *node[K, V]) *node[K, V] {
	x := nd.left
	if x.isblack() {
		panic("rotateright(): rotating a black link ? call the programmer")
	}
	nd.left = x.right
	x.right = nd
	x.black = nd.black
	nd.setred()
	return x
}

// REQUIRE: Left and Right children must be present
func (llrb *Llrb[K, V]) flip(nd *node[K, V]) {
	nd.left.togglelink()
	nd.right.togglelink()
	nd.togglelink()
}

// REQUIRE: Left and Right children must be present
func (llrb *Llrb[K, V]) moveredleft(nd *node[K, V]) *node[K, V] {
	llrb.flip(nd)
	if nd.right.left.isred() {
		nd.right = llrb.rotateright(nd.right)
		nd = llrb.rotateleft(nd)
		llrb.flip(nd)
	}
	return nd
}

// REQUIRE: Left and Right children must be present
func (llrb *Llrb[K, V]) moveredright(nd *node[K, V]) *node[K, V] {
	llrb.flip(nd)
	if nd.left.left.isred() {
		nd = llrb.rotateright(nd)
		llrb.flip(nd)
	}
	return nd
}

// fixup restore the left-leaning invariant on the way back up:
// right-leaning reds are rotated left, two left reds in a row are
// rotated right, two red children are color flipped.
func (llrb *Llrb[K, V]) fixup(nd *node[K, V]) *node[K, V] {
	if nd.right.isred() {
		nd = llrb.rotateleft(nd)
	}
	if nd.left.isred() && nd.left.left.isred() {
		nd = llrb.rotateright(nd)
	}
	if nd.left.isred() && nd.right.isred() {
		llrb.flip(nd)
	}
	return nd
}
