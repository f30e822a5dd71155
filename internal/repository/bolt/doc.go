// Package bolt implements the repository stores on an embedded bolthold file.
//
// Records are keyed by the hex form of a generated ObjectID so identifiers look
// the same as with MongoDB. Each record type lives in its own bucket.
package bolt
