// Package factory implements the Factory Method pattern examples: a
// Shape hierarchy created from a ShapeContext and a Bullet hierarchy
// with fast, slow, and splash variants.
//
// In Go the "subclass-overridable creation method" becomes a registry
// of constructor functions. A factory maps a kind name to the function
// that builds it, so new kinds are added by registering a constructor,
// never by editing the factory.
package factory
