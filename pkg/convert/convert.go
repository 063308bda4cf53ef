// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides lenient conversions for query parameters.

Malformed input yields the caller's default instead of an error. Do not use it
where a malformed value must be reported back to the client.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToIntD parses str as a base-10 int, returning def when str is blank or malformed.
func ToIntD(str string, def int) int {
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}
	return def
}
