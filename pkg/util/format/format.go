// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatBytes formats b with binary (IEC) units, e.g. "512 B", "1 KiB" or
// "1.50 MiB". Whole values are printed without decimals.
func FormatBytes(b int64) string {
	const (
		_   = iota // ignore first value
		KiB = 1 << (10 * iota)
		MiB
		GiB
		TiB
	)

	val := float64(b)
	var unit string

	switch {
	case b >= TiB:
		val /= float64(TiB)
		unit = "TiB"
	case b >= GiB:
		val /= float64(GiB)
		unit = "GiB"
	case b >= MiB:
		val /= float64(MiB)
		unit = "MiB"
	case b >= KiB:
		val /= float64(KiB)
		unit = "KiB"
	default:
		return fmt.Sprintf("%d B", b)
	}

	if val == float64(int64(val)) {
		return fmt.Sprintf("%.0f %s", val, unit)
	}
	return fmt.Sprintf("%.2f %s", val, unit)
}

// ParseBytes parses sizes such as "512", "4KB", "4KiB" or "1.5 GB". Both
// decimal-looking and binary unit names are treated as powers of 1024.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)

	i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.'
	})
	num, unit := s, ""
	if i >= 0 {
		num, unit = s[:i], strings.TrimSpace(s[i:])
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid size %q", s)
	}

	var mult float64
	switch strings.ToUpper(unit) {
	case "", "B":
		mult = 1
	case "K", "KB", "KIB":
		mult = 1 << 10
	case "M", "MB", "MIB":
		mult = 1 << 20
	case "G", "GB", "GIB":
		mult = 1 << 30
	case "T", "TB", "TIB":
		mult = 1 << 40
	default:
		return 0, fmt.Errorf("invalid size unit %q", unit)
	}
	return int64(v * mult), nil
}
