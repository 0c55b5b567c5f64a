package orm

import (
	"github.com/iov-one/photosale"
	"github.com/iov-one/photosale/errors"
)

// prefixRangeEnd returns the exclusive upper bound of all keys starting
// with prefix, or nil when no such bound exists.
func prefixRangeEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

func queryPrefix(db photosale.ReadOnlyKVStore, prefix []byte) ([]photosale.Model, error) {
	itr, err := db.Iterator(prefix, prefixRangeEnd(prefix))
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return ConsumeIterator(itr)
}

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr photosale.Iterator) ([]photosale.Model, error) {
	defer itr.Close()

	var res []photosale.Model
	for itr.Valid() {
		res = append(res, photosale.Pair(itr.Key(), itr.Value()))
		if err := itr.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}
