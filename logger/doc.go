// Package logger is the central log for the emulator. Entries are short
// tagged strings and the log is capped to a maximum number of entries.
//
// Consecutive entries with identical tag and detail are collapsed into a
// single entry with a repeat count. This keeps the log useful when a program
// hammers an unmapped address every frame.
//
// Logging is gated by the Permission interface. Most callers pass
// logger.Allow.
package logger
