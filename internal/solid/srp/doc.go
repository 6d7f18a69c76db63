// Package srp implements the Single Responsibility Principle example:
// a Journal that owns entry content and a separate FileStore that owns
// persistence. Neither type has a second reason to change.
package srp
