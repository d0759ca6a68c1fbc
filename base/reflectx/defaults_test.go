// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"
	"time"

	"github.com/hasnatsamiul/3D-Model-Dashboard/lattice"
	"github.com/stretchr/testify/assert"
)

type inner struct {
	Speed float32 `default:"0.5"`
	Count uint8   `default:"0x10"`
}

type outer struct {
	Name    string             `default:"lattice"`
	On      bool               `default:"true"`
	N       int                `default:"-3"`
	Timeout time.Duration      `default:"2m"`
	Mode    lattice.ColorModes `default:"delta"`
	Inner   inner
	Plain   string
	private int `default:"7"`
}

func TestSetFromDefaultTags(t *testing.T) {
	o := &outer{Plain: "kept"}
	assert.NoError(t, SetFromDefaultTags(o))
	assert.Equal(t, "lattice", o.Name)
	assert.True(t, o.On)
	assert.Equal(t, -3, o.N)
	assert.Equal(t, 2*time.Minute, o.Timeout)
	assert.Equal(t, lattice.ModeDelta, o.Mode)
	assert.Equal(t, float32(0.5), o.Inner.Speed)
	assert.Equal(t, uint8(16), o.Inner.Count)
	assert.Equal(t, "kept", o.Plain)
	assert.Equal(t, 0, o.private)

	assert.NoError(t, SetFromDefaultTags(nil))
	assert.NoError(t, SetFromDefaultTags((*outer)(nil)))
	assert.Error(t, SetFromDefaultTags(outer{}))
	n := 1
	assert.Error(t, SetFromDefaultTags(&n))
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	type bad struct {
		A int                `default:"x"`
		B lattice.ColorModes `default:"nope"`
		C float64            `default:"1.5"`
		D []int              `default:"1"`
	}
	b := &bad{}
	err := SetFromDefaultTags(b)
	assert.ErrorContains(t, err, "bad.A")
	assert.ErrorContains(t, err, "bad.B")
	assert.ErrorContains(t, err, "bad.D")
	assert.Equal(t, 1.5, b.C)
}

func TestSetString(t *testing.T) {
	var i int64
	assert.NoError(t, SetString(reflect.ValueOf(&i).Elem(), "42"))
	assert.Equal(t, int64(42), i)
	assert.Error(t, SetString(reflect.ValueOf(i), "1"))
	var u uint8
	assert.Error(t, SetString(reflect.ValueOf(&u).Elem(), "300"))
}
