// Package catalog loads and serves the metadata for the pattern
// documents under docs/. The catalog is a YAML file so the document
// list can grow without a code change.
package catalog
