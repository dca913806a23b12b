// Package session owns the synchronous request/response transaction
// driver over one brick device handle.
//
// Ownership boundary:
// - one write + one length/body read pair per command
// - in-order reply descriptor decode with partial-reply counting
// - device/framing error classification and descriptions
// - typed wrappers over the direct-command catalog
package session
