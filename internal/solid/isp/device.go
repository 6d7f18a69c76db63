package isp

import (
	"errors"
	"fmt"
)

// Device errors.
var (
	// ErrEmptyDocument is returned when an operation receives no content.
	ErrEmptyDocument = errors.New("document cannot be empty")

	// ErrNothingScanned is returned when the scanner tray is empty.
	ErrNothingScanned = errors.New("nothing to scan")
)

// Printer prints documents. Clients that only print depend on this
// interface alone.
type Printer interface {
	Print(document string) error
}

// Scanner scans documents.
type Scanner interface {
	Scan() (string, error)
}

// Fax transmits documents to a destination.
type Fax interface {
	Fax(document, destination string) error
}

// MultiFunctionDevice is an office machine that genuinely supports all
// three roles, so it implements all three interfaces.
type MultiFunctionDevice struct {
	printed []string
	tray    []string
	faxed   map[string][]string
}

// NewMultiFunctionDevice creates a device with the given documents
// loaded in the scanner tray.
func NewMultiFunctionDevice(tray ...string) *MultiFunctionDevice {
	return &MultiFunctionDevice{
		tray:  tray,
		faxed: make(map[string][]string),
	}
}

// Print implements Printer.
func (d *MultiFunctionDevice) Print(document string) error {
	if document == "" {
		return ErrEmptyDocument
	}
	d.printed = append(d.printed, document)
	return nil
}

// Scan implements Scanner, consuming the next document in the tray.
func (d *MultiFunctionDevice) Scan() (string, error) {
	if len(d.tray) == 0 {
		return "", ErrNothingScanned
	}
	document := d.tray[0]
	d.tray = d.tray[1:]
	return document, nil
}

// Fax implements Fax.
func (d *MultiFunctionDevice) Fax(document, destination string) error {
	if document == "" {
		return ErrEmptyDocument
	}
	if destination == "" {
		return fmt.Errorf("fax destination is required")
	}
	d.faxed[destination] = append(d.faxed[destination], document)
	return nil
}

// Printed returns every document printed so far.
func (d *MultiFunctionDevice) Printed() []string {
	out := make([]string, len(d.printed))
	copy(out, d.printed)
	return out
}

// Faxed returns the documents sent to a destination.
func (d *MultiFunctionDevice) Faxed(destination string) []string {
	docs := d.faxed[destination]
	out := make([]string, len(docs))
	copy(out, docs)
	return out
}

// PlainPrinter can only print. Because the roles are segregated it
// implements exactly one small interface instead of erroring out of
// Scan and Fax methods it was forced to carry.
type PlainPrinter struct {
	printed []string
}

// NewPlainPrinter creates a PlainPrinter.
func NewPlainPrinter() *PlainPrinter {
	return &PlainPrinter{}
}

// Print implements Printer.
func (p *PlainPrinter) Print(document string) error {
	if document == "" {
		return ErrEmptyDocument
	}
	p.printed = append(p.printed, document)
	return nil
}

// Printed returns every document printed so far.
func (p *PlainPrinter) Printed() []string {
	out := make([]string, len(p.printed))
	copy(out, p.printed)
	return out
}

// PrintAll drives any Printer over a batch of documents, stopping at
// the first failure. It is the kind of client the segregation serves:
// it compiles against Printer and neither knows nor cares whether the
// device can also scan or fax.
func PrintAll(p Printer, documents ...string) error {
	for _, document := range documents {
		if err := p.Print(document); err != nil {
			return fmt.Errorf("batch print failed: %w", err)
		}
	}
	return nil
}
