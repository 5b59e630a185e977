package model

// Setting is a persisted key/value display preference, such as the dark/light
// theme flag. Settings live outside the price dataset and are the only
// mutable state in the system.
type Setting struct {
	Key   string
	Value string
}
