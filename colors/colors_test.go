// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromHex(t *testing.T) {
	tests := map[string]color.RGBA{
		"#111111": Background,
		"444444":  Edge,
		"#888":    NoValue,
		"#0066ff": {0, 0x66, 0xff, 0xff},
		"#FF0000": {0xff, 0, 0, 0xff},
	}
	for hex, want := range tests {
		have, err := FromHex(hex)
		require.NoError(t, err, hex)
		assert.Equal(t, want, have, hex)
	}

	_, err := FromHex("#zzzzzz")
	assert.Error(t, err)
	assert.Panics(t, func() { MustFromHex("nope") })
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#111111", AsHex(Background))
	assert.Equal(t, "#0066FF", AsHex(color.RGBA{0, 0x66, 0xff, 0xff}))
	assert.Equal(t, "nil", AsHex(nil))
	assert.Equal(t, NoValue, MustFromHex(AsHex(NoValue)))
	assert.Equal(t, color.RGBA{}, AsRGBA(nil))
}
