// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex saves and opens rendered frames in the common
// image formats, and compares images in tests.
package imagex

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"golang.org/x/image/tiff"
)

// Formats are the supported image encoding formats.
type Formats int32 //enums:enum

// The supported image encoding formats
const (
	None Formats = iota
	PNG
	JPEG
	BMP
	TIFF
)

var formatsNames = [...]string{"None", "PNG", "JPEG", "BMP", "TIFF"}

func (f Formats) String() string {
	if f < None || f > TIFF {
		return fmt.Sprintf("Formats(%d)", int32(f))
	}
	return formatsNames[f]
}

// JPEGQuality is the quality of saved JPEG images.
var JPEGQuality = 90

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.New("ExtToFormat: ext is empty")
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// Open opens an image from the given filename,
// inferring its format from its content.
func Open(filename string) (image.Image, error) {
	return imgio.Open(filename)
}

// Save saves the image to the given filename,
// with the format inferred from the filename.
func Save(im image.Image, filename string) error {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return err
	}
	switch f {
	case PNG:
		return imgio.Save(filename, im, imgio.PNGEncoder())
	case JPEG:
		return imgio.Save(filename, im, imgio.JPEGEncoder(JPEGQuality))
	case BMP:
		return imgio.Save(filename, im, imgio.BMPEncoder())
	case TIFF:
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		err = tiff.Encode(file, im, &tiff.Options{Compression: tiff.Deflate})
		return errors.Join(err, file.Close())
	}
	return fmt.Errorf("imagex.Save: format %v not valid", f)
}
