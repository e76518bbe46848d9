/* This file is part of clarion-go.
 * Copyright (C) 2025 the clarion-go authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU Affero General Public License for more details.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with clarion-go.  If not, see <http://www.gnu.org/licenses/>.
 */

package clarion

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// Epoch is the Clarion date epoch, the 28th of December, 1800.
var Epoch = civil.Date{Year: 1800, Month: time.December, Day: 28}

// Supported calendar range. Dates are proleptic Gregorian with years in
// [-9999, 9999]; decoding an offset outside [MinDays, MaxDays] overflows.
var (
	MinDate = civil.Date{Year: -9999, Month: time.January, Day: 1}
	MaxDate = civil.Date{Year: 9999, Month: time.December, Day: 31}
)

const (
	// MinDays is the day offset of MinDate relative to Epoch.
	MinDays int32 = -4309857

	// MaxDays is the day offset of MaxDate relative to Epoch.
	MaxDays int32 = 2994626
)

// Date is a calendar date in the Clarion date format, the number of days
// between the date and the 28th of December, 1800.
type Date struct {
	days int32
}

// NewDate returns a Date holding the given day offset. The offset is stored
// unmodified; decoding can still fail if it lies outside [MinDays, MaxDays].
func NewDate(days int32) Date {
	return Date{days: days}
}

// NewDateChecked is the eager variant of NewDate. It returns ErrOutOfRange
// when the offset does not correspond to a representable calendar date,
// instead of deferring the failure to Calendar.
func NewDateChecked(days int32) (Date, error) {
	if days < MinDays || days > MaxDays {
		return Date{}, ErrOutOfRange
	}
	return Date{days: days}, nil
}

// DateOf returns the Date encoding of a calendar date. It always succeeds;
// every date the calendar type can represent fits in the int32 day offset.
func DateOf(d civil.Date) Date {
	return Date{days: EncodeDate(d)}
}

// Days returns the raw day offset relative to Epoch.
func (d Date) Days() int32 {
	return d.days
}

// Calendar returns the calendar date this Date represents, or
// ErrConversionOverflowed when the offset falls outside the representable
// range.
func (d Date) Calendar() (civil.Date, error) {
	return DecodeDate(d.days)
}

// String renders the decoded calendar date, or the raw offset when the value
// does not decode.
func (d Date) String() string {
	cd, err := d.Calendar()
	if err != nil {
		return fmt.Sprintf("clarion.Date(%d)", d.days)
	}
	return cd.String()
}

// EncodeDate returns the number of whole days between date and Epoch.
func EncodeDate(date civil.Date) int32 {
	return int32(date.DaysSince(Epoch))
}

// DecodeDate returns Epoch plus the given number of days. Offsets outside
// [MinDays, MaxDays] fail with ErrConversionOverflowed rather than wrapping.
func DecodeDate(days int32) (civil.Date, error) {
	if days < MinDays || days > MaxDays {
		return civil.Date{}, ErrConversionOverflowed
	}
	return Epoch.AddDays(int(days)), nil
}
