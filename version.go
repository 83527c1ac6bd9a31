// Package simplejson is a write-only JSON value tree with an incremental JSON
// array file writer. See the json and stream packages.
package simplejson

const Version = "v0.1.0"
