// Package lsp implements the Liskov Substitution Principle example.
// The classic trap is modeling Square as a Rectangle whose setters
// break rectangle expectations. Here Square and Rectangle are separate
// types behind a Sizer interface, so any Sizer can be substituted for
// any other without surprising callers.
package lsp
