// Package utils contains small type conversion helpers shared by the HTTP
// layer and middleware.
package utils
