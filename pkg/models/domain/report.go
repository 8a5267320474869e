package domain

import "time"

// Report is the renderable form of a scenario calculation, consumed by the
// terminal reporter.
type Report struct {
	Title       string
	Period      HoldingPeriod
	Sections    []ReportSection
	NetProceeds float64
	Currency    string
}

// HoldingPeriod is the vesting-to-sale range a report covers.
type HoldingPeriod struct {
	VestingDate time.Time
	SellDate    time.Time
	Years       float64
}

// ReportSection groups related lines of a report.
type ReportSection struct {
	Title   string
	Details []ReportDetail
}

// ReportDetail is a single labeled line with an optional formula note.
type ReportDetail struct {
	Name        string
	Value       float64
	Unit        string
	Description string
}
