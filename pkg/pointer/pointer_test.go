// Copyright (c) 2026 Filmorate. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTo_ReturnsCopy(t *testing.T) {
	value := 42
	p := To(value)
	*p = 7

	assert.Equal(t, 42, value)
	assert.Equal(t, 7, *p)
}
