/*
Package orm stores protobuf models in the key value store.

The key space is split into buckets. Every bucket holds a single model
type under the "<bucket>:" prefix and may keep secondary indexes that
reference the primary keys, ie. the photo bucket indexes photos by their
holder. Sequences generate the primary keys of new models.
*/
package orm
