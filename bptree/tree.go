// Package bptree implements the B++ tree: an in-memory ordered key/value
// index whose leaves use gapped arrays and a per-leaf learned linear
// predictor to accelerate insertion and point lookup.
//
// The tree is single-owner, single-thread: callers must serialize
// concurrent access externally. See Config for construction options.
package bptree

import "iter"

// Tree is a B++ tree handle. The zero value is not usable; construct one
// with New.
type Tree[K Numeric, V any] struct {
	root  node[K, V]
	cfg   Config
	head  *leaf[K, V]
	stats predictorStats
}

// New constructs a tree with the given configuration. Zero-valued tuning
// fields are replaced by their defaults before validation. Invalid
// configuration is reported as a *ConfigurationError rather than a panic.
func New[K Numeric, V any](cfg Config) (*Tree[K, V], error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, V]{cfg: cfg}, nil
}

// Insert adds key with value, or overwrites the value of an existing key.
// It returns the prior value and whether one existed.
func (t *Tree[K, V]) Insert(key K, value V) (prev V, had bool) {
	if t.root == nil {
		lf := newLeaf[K, V](&t.cfg)
		lf.slots[0] = slot[K, V]{key: key, value: value, live: true}
		lf.liveCount = 1
		t.root = lf
		t.head = lf
		return prev, false
	}

	prev, had, split := t.root.put(&t.cfg, key, value, nil)
	if split != nil {
		t.root = &internalNode[K, V]{
			keys:     []K{split.sep},
			children: []node[K, V]{t.root, split.right},
		}
	}
	return prev, had
}

// Search returns the value stored for key, if any.
func (t *Tree[K, V]) Search(key K) (V, bool) {
	if t.root == nil {
		var zero V
		return zero, false
	}
	return t.root.find(&t.cfg, key, &t.stats)
}

// Delete removes key, reporting whether it was present. Leaves are never
// merged or rebalanced after a delete; a leaf emptied by deletion stays
// in the chain with live_count == 0.
func (t *Tree[K, V]) Delete(key K) bool {
	if t.root == nil {
		return false
	}
	return t.root.remove(&t.cfg, key)
}

// All returns a single-pass, ascending-order sequence of every (key,
// value) pair in the tree.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		c := &cursor[K, V]{lf: t.head}
		for {
			k, v, ok := c.next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

// Range returns a single-pass, ascending-order sequence of the (key,
// value) pairs with lo <= key <= hi. If lo > hi, the sequence is empty.
func (t *Tree[K, V]) Range(lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root == nil || lo > hi {
			return
		}
		c := &cursor[K, V]{lf: t.root.leafFor(lo), lower: lo, hasLower: true, upper: hi, hasUpper: true}
		for {
			k, v, ok := c.next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

// Stats computes the tree's statistics with a single leaf-chain walk.
func (t *Tree[K, V]) Stats() Stats {
	var s Stats
	if t.root == nil {
		return s
	}
	s.Height = t.height()

	var totalUtil float64
	for lf := t.head; lf != nil; lf = lf.next {
		s.Leaves++
		s.Size += lf.liveCount
		totalUtil += float64(lf.liveCount) / float64(lf.cap)
		if lf.model.trained {
			s.LeavesWithModels++
		}
	}
	if s.Leaves > 0 {
		s.AvgUtilization = totalUtil / float64(s.Leaves)
	}

	total := t.stats.hits + t.stats.misses
	if total > 0 {
		s.ModelHitRate = float64(t.stats.hits) / float64(total)
		s.HasModelHitRate = true
	}
	return s
}

func (t *Tree[K, V]) height() int {
	h := 1
	n := t.root
	for {
		in, ok := n.(*internalNode[K, V])
		if !ok {
			return h
		}
		h++
		n = in.children[0]
	}
}

// Stats is the statistics record returned by Tree.Stats.
type Stats struct {
	Size             int
	Leaves           int
	Height           int
	AvgUtilization   float64
	LeavesWithModels int
	ModelHitRate     float64
	HasModelHitRate  bool
}
