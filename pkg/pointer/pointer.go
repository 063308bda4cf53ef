// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer holds generic pointer helpers for optional fields.
package pointer

// To returns a pointer to a copy of v, e.g. pointer.To(date.New(1895, time.December, 28)).
func To[T any](v T) *T {
	return &v
}
