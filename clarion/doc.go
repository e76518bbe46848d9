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

// Package clarion converts between the compact numeric date, time and color
// encodings used by Clarion legacy records and general-purpose calendar,
// time-of-day and RGB representations.
//
// Dates are stored as the number of days between the date and the 28th of
// December, 1800 (proleptic Gregorian). Times are stored as the number of
// centiseconds (10ms units) since midnight. Colors are stored as a 24-bit
// integer packing the red channel in the least significant byte, then green,
// then blue.
//
// All conversions are pure functions over immutable value types and are safe
// for concurrent use.
package clarion
