package bptree

import "cmp"

// internalNode is a fixed-fanout routing node: k separator keys and k+1
// child links. Child i holds keys < keys[i]; child k holds keys >= keys[k-1].
type internalNode[K Numeric, V any] struct {
	keys     []K
	children []node[K, V]
}

func (n *internalNode[K, V]) minKey() K {
	return n.children[0].minKey()
}

func (n *internalNode[K, V]) leafFor(key K) *leaf[K, V] {
	return n.children[n.childIndex(key)].leafFor(key)
}

// childIndex returns the largest i with keys[i] <= key, descending to
// children[i+1]; if no such i exists it returns 0, descending to
// children[0]. Implemented as a binary search over the ascending
// separator keys.
func (n *internalNode[K, V]) childIndex(key K) int {
	lo, hi := 0, len(n.keys)
	for lo < hi {
		mid := (lo + hi) / 2
		if cmp.Compare(n.keys[mid], key) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func (n *internalNode[K, V]) find(cfg *Config, key K, stats *predictorStats) (V, bool) {
	return n.children[n.childIndex(key)].find(cfg, key, stats)
}

func (n *internalNode[K, V]) put(cfg *Config, key K, value V, stats *predictorStats) (prev V, had bool, split *splitDescriptor[K, V]) {
	idx := n.childIndex(key)
	prev, had, childSplit := n.children[idx].put(cfg, key, value, stats)
	if childSplit == nil {
		return prev, had, nil
	}

	checkInvariant(childSplit.sep == childSplit.right.minKey(),
		"separator %v does not equal right subtree's min key %v", childSplit.sep, childSplit.right.minKey())

	n.keys = insertAt(n.keys, idx, childSplit.sep)
	n.children = insertAt(n.children, idx+1, childSplit.right)

	if len(n.children) > cfg.Order {
		return prev, had, n.splitSelf(cfg.Order)
	}
	return prev, had, nil
}

// splitSelf divides an overfull node on ascent: the left half retains
// ceil(order/2) children and one fewer key, the middle key is promoted
// to the parent, and the right half takes the rest.
func (n *internalNode[K, V]) splitSelf(order int) *splitDescriptor[K, V] {
	leftChildren := ceilDiv(order, 2)
	leftKeys := leftChildren - 1

	middle := n.keys[leftKeys]
	right := &internalNode[K, V]{
		keys:     append([]K{}, n.keys[leftKeys+1:]...),
		children: append([]node[K, V]{}, n.children[leftChildren:]...),
	}

	n.keys = n.keys[:leftKeys]
	n.children = n.children[:leftChildren]

	return &splitDescriptor[K, V]{sep: middle, right: right}
}

func (n *internalNode[K, V]) remove(cfg *Config, key K) bool {
	return n.children[n.childIndex(key)].remove(cfg, key)
}
