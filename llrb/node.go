package llrb

import "cmp"
import "fmt"
import "io"
import "strings"

// node defines an entry in the LLRB tree. Every node exclusively owns
// its left and right subtree, there is no parent link: the tree is
// navigated top-down and rebuilt bottom-up.
type node[K cmp.Ordered, V any] struct {
	key   K
	value V
	black bool
	left  *node[K, V]
	right *node[K, V]
}

// new nodes come up red, deferring their contribution to the
// black-height until fixup.
func newnode[K cmp.Ordered, V any](key K, value V) *node[K, V] {
	return &node[K, V]{key: key, value: value, black: false}
}

// nil links count as black.
func (nd *node[K, V]) isblack() bool {
	if nd == nil {
		return true
	}
	return nd.black
}

func (nd *node[K, V]) isred() bool {
	if nd == nil {
		return false
	}
	return !nd.black
}

func (nd *node[K, V]) setblack() *node[K, V] {
	nd.black = true
	return nd
}

func (nd *node[K, V]) setred() *node[K, V] {
	nd.black = false
	return nd
}

func (nd *node[K, V]) togglelink() *node[K, V] {
	nd.black = !nd.black
	return nd
}

// clonedetach copies key, value and color, dropping both subtrees.
// Used while transplanting the in-order successor during delete.
func (nd *node[K, V]) clonedetach() *node[K, V] {
	return &node[K, V]{key: nd.key, value: nd.value, black: nd.black}
}

func (nd *node[K, V]) clonetree() *node[K, V] {
	if nd == nil {
		return nil
	}
	newnd := nd.clonedetach()
	newnd.left = nd.left.clonetree()
	newnd.right = nd.right.clonetree()
	return newnd
}

//---- maintanence methods.

func (nd *node[K, V]) repr() string {
	return fmt.Sprintf("%v %v", nd.key, nd.isblack())
}

func (nd *node[K, V]) pprint(prefix string) {
	if nd == nil {
		fmt.Printf("%v\n", nd)
		return
	}
	fmt.Printf("%v%v\n", prefix, nd.repr())
	prefix += "  "
	fmt.Printf("%vleft: ", prefix)
	nd.left.pprint(prefix)
	fmt.Printf("%vright: ", prefix)
	nd.right.pprint(prefix)
}

func (nd *node[K, V]) dotdump(buffer io.Writer) {
	if nd == nil {
		return
	}

	whatcolor := func(childnd *node[K, V]) string {
		if childnd.isred() {
			return "red"
		}
		return "black"
	}

	key := fmt.Sprintf("%v", nd.key)
	lines := []string{
		fmt.Sprintf("  %q [label=\"{%v}\"];\n", key, key),
	}
	fmsg := "  %q -> %q [color=%v];\n"
	if nd.left != nil {
		lkey := fmt.Sprintf("%v", nd.left.key)
		lines = append(lines, fmt.Sprintf(fmsg, key, lkey, whatcolor(nd.left)))
	}
	if nd.right != nil {
		rkey := fmt.Sprintf("%v", nd.right.key)
		lines = append(lines, fmt.Sprintf(fmsg, key, rkey, whatcolor(nd.right)))
	}
	buffer.Write([]byte(strings.Join(lines, "")))
	nd.left.dotdump(buffer)
	nd.right.dotdump(buffer)
}
