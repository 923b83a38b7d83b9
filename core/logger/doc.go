// Package logger provides structured logging based on Zap.
//
// A single configured *zap.Logger is created at startup and handed to every
// component. Request handlers derive a child logger via WithRayID, which
// attaches the ray_id generated by the rayid middleware so that all log lines
// belonging to one HTTP request can be correlated.
//
// Configuration covers the minimum level (debug, info, warn, error) and the
// encoding (console for development, json for production).
package logger
