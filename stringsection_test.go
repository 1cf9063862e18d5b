// SPDX-License-Identifier: MIT
//
// Copyright (c) 2024 Adrian "asie" Siekierka
// Copyright (c) 2017 Kevin Kirchner

package elfpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSectionGetString(t *testing.T) {
	data := []byte("\x00foo\x00bar\x00")
	ss := StringSection{Section: &Section{Data: data, Size: uint64(len(data))}}

	assert.Equal(t, "", ss.GetString(0))
	assert.Equal(t, "foo", ss.GetString(1))
	assert.Equal(t, "bar", ss.GetString(5))
}

func TestStringSectionGetStringOutOfRange(t *testing.T) {
	data := []byte("\x00foo\x00")
	ss := StringSection{Section: &Section{Data: data, Size: uint64(len(data))}}

	assert.Equal(t, "", ss.GetString(100))
}

func TestStringSectionGetStringNoTrailingNUL(t *testing.T) {
	data := []byte("\x00foo")
	ss := StringSection{Section: &Section{Data: data, Size: uint64(len(data))}}

	assert.Equal(t, "foo", ss.GetString(1))
}
