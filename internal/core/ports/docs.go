// Package ports defines the contracts between the delivery-zone core and its
// infrastructure: persistence, the live traffic lookup and event publishing.
package ports
