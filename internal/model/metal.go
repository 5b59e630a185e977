package model

import "time"

// Metal represents a metal from the database
type Metal struct {
	ID        string
	Name      string
	Symbol    string
	Unit      string
	StartDate time.Time
}

// MetalPrice is one stored daily price row. DayIndex is the offset in days
// from the metal's start date, so day 0 is the start date itself.
type MetalPrice struct {
	ID       string
	MetalID  string
	DayIndex int
	Price    float64
}
