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

// Err enumerates the ways a conversion can fail. The set is closed; every
// failure returned by this package is one of the constants below.
type Err int

const (
	// ErrConversionOverflowed indicates a conversion failed because the
	// resulting date would fall outside the representable range.
	ErrConversionOverflowed Err = iota

	// ErrOutOfRange indicates a constructor was given a value outside its
	// legal bounds.
	ErrOutOfRange
)

// Error returns the message for the failure kind.
func (e Err) Error() string {
	switch e {
	case ErrConversionOverflowed:
		return "the date value was out of range for the conversion and overflowed"
	case ErrOutOfRange:
		return "the parameter was out of range for the constructor"
	default:
		return "unknown error"
	}
}
