// Package database manages the MySQL connection used by the reservation
// store and the content catalog.
//
// Connect builds a DSN from the configuration, opens a pooled GORM
// connection, and verifies it with a context-bound ping. GORM's built-in
// logging is disabled; query failures surface as errors through the
// application logger instead.
package database
