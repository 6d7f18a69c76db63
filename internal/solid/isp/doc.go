// Package isp implements the Interface Segregation Principle example:
// a multifunction office device split into Printer, Scanner, and Fax
// role interfaces. A plain printer implements only Printer instead of
// stubbing methods it cannot honor.
package isp
