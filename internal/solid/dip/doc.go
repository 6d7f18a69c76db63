// Package dip implements the Dependency Inversion Principle example:
// a NotificationService that depends on the MessageSender abstraction
// rather than on concrete email or SMS implementations. The concrete
// senders are injected, so the service never changes when a new
// channel appears.
package dip
