// Package utils provides conversion helpers for loosely typed stored values.
//
// Settings persisted as plain strings (for example in the database backend)
// are decoded through these helpers into typed values.
package utils
