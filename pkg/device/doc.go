// Package device provides a high level driver for ANPP navigation
// units.
package device

// The driver layers typed operations (read status, change
// configuration, schedule periodic packets) on top of the raw packet
// exchange from package anpp. Every operation is a request/response
// round trip bounded by the driver's read timeout.
