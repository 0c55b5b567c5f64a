package store

import (
	"bytes"

	"github.com/google/btree"
	"github.com/iov-one/photosale/errors"
)

// collectBtree returns all cached items with a key in [start, end) in
// ascending order. A nil bound is open.
func collectBtree(bt *btree.BTree, start, end []byte) []btree.Item {
	var items []btree.Item
	insert := func(it btree.Item) bool {
		items = append(items, it)
		return true
	}
	switch {
	case start == nil && end == nil:
		bt.Ascend(insert)
	case start == nil:
		bt.AscendLessThan(item{key: end}, insert)
	case end == nil:
		bt.AscendGreaterOrEqual(item{key: start}, insert)
	default:
		bt.AscendRange(item{key: start}, item{key: end}, insert)
	}
	return items
}

// itemIter merges the cached items with the parent iterator. Cached
// items shadow parent entries with the same key and deleted items hide
// them altogether.
type itemIter struct {
	items     []btree.Item
	idx       int
	parent    Iterator
	ascending bool

	valid bool
	key   []byte
	value []byte
}

var _ Iterator = (*itemIter)(nil)

func newItemIter(items []btree.Item, parent Iterator, ascending bool) *itemIter {
	it := &itemIter{
		items:     items,
		parent:    parent,
		ascending: ascending,
	}
	// An error can only come from the parent and it is not possible to
	// report it here. Such iterator is simply not valid.
	_ = it.advance()
	return it
}

// advance moves the cursor to the next visible entry.
func (i *itemIter) advance() error {
	for {
		ours := i.idx < len(i.items)
		theirs := i.parent.Valid()

		switch {
		case !ours && !theirs:
			i.valid = false
			i.key, i.value = nil, nil
			return nil
		case !ours:
			return i.takeParent()
		case !theirs:
			if i.takeOurs() {
				return nil
			}
		default:
			cmp := bytes.Compare(i.items[i.idx].(item).key, i.parent.Key())
			if !i.ascending {
				cmp = -cmp
			}
			if cmp > 0 {
				return i.takeParent()
			}
			if cmp == 0 {
				// Cached value overwrites the parent one.
				if err := i.parent.Next(); err != nil {
					return err
				}
			}
			if i.takeOurs() {
				return nil
			}
		}
	}
}

// takeOurs consumes the current cached item and returns true if it is
// visible.
func (i *itemIter) takeOurs() bool {
	it := i.items[i.idx].(item)
	i.idx++
	if it.deleted {
		return false
	}
	i.valid = true
	i.key, i.value = it.key, it.value
	return true
}

func (i *itemIter) takeParent() error {
	i.valid = true
	i.key, i.value = i.parent.Key(), i.parent.Value()
	return i.parent.Next()
}

// Valid implements Iterator and returns true iff it can be read
func (i *itemIter) Valid() bool {
	return i.valid
}

// Next moves the iterator to the next sequential key in the database, as
// defined by order of iteration.
func (i *itemIter) Next() error {
	if !i.valid {
		return errors.Wrap(errors.ErrDatabase, "iterator is not valid")
	}
	return i.advance()
}

// Key returns the key of the cursor.
func (i *itemIter) Key() []byte {
	return i.key
}

// Value returns the value of the cursor.
func (i *itemIter) Value() []byte {
	return i.value
}

// Close releases the Iterator.
func (i *itemIter) Close() {
	i.parent.Close()
	i.items = nil
	i.valid = false
}
