// Package ehash implements an extendible hash table keyed by strings.
//
// A directory of 2^depth slots maps the low bits of each key's 64-bit hash to
// a bucket of bounded capacity. When an insert fills a bucket, the bucket is
// split on the next hash bit, and the directory doubles if the bucket was
// already using every directory bit. Buckets whose entries cannot be
// separated (identical hashes, or maximum depth reached) grow past capacity
// instead of splitting.
//
// Tables are not safe for concurrent use.
package ehash
