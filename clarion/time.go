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
	"cloud.google.com/go/civil"
)

// CentisPerDay is the number of centiseconds in 24 hours.
const CentisPerDay = 8640000

// Time is a moment in time in the Clarion time format, the number of
// centiseconds (10ms units) between the time and midnight.
type Time struct {
	centis int32
}

// NewTime returns a Time holding the given centisecond offset, reduced
// modulo CentisPerDay. The reduction uses the native remainder operator, so
// a negative offset stays negative; Clock still wraps it backward from
// midnight.
func NewTime(centis int32) Time {
	return Time{centis: centis % CentisPerDay}
}

// TimeOf returns the Time encoding of a time of day.
func TimeOf(t civil.Time) Time {
	return Time{centis: EncodeTime(t)}
}

// Centiseconds returns the raw centisecond offset relative to midnight.
func (t Time) Centiseconds() int32 {
	return t.centis
}

// Clock returns the time of day this Time represents.
func (t Time) Clock() civil.Time {
	return DecodeTime(t.centis)
}

func (t Time) String() string {
	return t.Clock().String()
}

// EncodeTime returns the number of whole centiseconds between t and
// midnight. Sub-centisecond precision is truncated.
func EncodeTime(t civil.Time) int32 {
	ms := (int64(t.Hour)*3600+int64(t.Minute)*60+int64(t.Second))*1000 +
		int64(t.Nanosecond)/1e6
	return int32(ms / 10)
}

// DecodeTime returns midnight plus the given number of centiseconds.
// Time of day is cyclic over 24 hours, so any offset decodes: negative
// offsets wrap backward from midnight (-1 is 23:59:59.99).
func DecodeTime(centis int32) civil.Time {
	cs := floorMod(int64(centis), CentisPerDay)
	return civil.Time{
		Hour:       int(cs / 360000),
		Minute:     int(cs / 6000 % 60),
		Second:     int(cs / 100 % 60),
		Nanosecond: int(cs%100) * 10000000,
	}
}

// floorMod returns x modulo m with the result in [0, m). Go's % truncates
// toward zero, which would leave negative offsets unwrapped.
func floorMod(x, m int64) int64 {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
