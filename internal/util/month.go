package util

import (
	"fmt"
	"time"
)

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var shortMonthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "Mei", "Jun",
	"Jul", "Agu", "Sep", "Okt", "Nov", "Des",
}

// MonthName returns the Indonesian name of month
func MonthName(month time.Month) string {
	return monthNames[month-1]
}

// MonthLabel returns the "Month Year" label of t in Indonesian, e.g. "Juni 2024"
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", MonthName(t.Month()), t.Year())
}

// ShortDate formats t as "3 Jun 2024"
func ShortDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), shortMonthNames[t.Month()-1], t.Year())
}

// CurrentMonth returns now in the given location, falling back to UTC when loc is nil
func CurrentMonth(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc)
}
