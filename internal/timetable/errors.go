package timetable

import "errors"

// Domain-specific errors for the timetable package.
var (
	ErrEmptyBlockID          = errors.New("block id is empty")
	ErrBlockNotAddressable   = errors.New("block has no server id and cannot be removed")
	ErrCalendarNotConfigured = errors.New("google calendar is not configured")
	ErrNothingToExport       = errors.New("no parsed blocks to export")
)
