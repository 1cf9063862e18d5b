// SPDX-License-Identifier: MIT
//
// Copyright (c) 2024 Adrian "asie" Siekierka
// Copyright (c) 2017 Kevin Kirchner

package elfpp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIdent(class Class, enc Encoding) []byte {
	return []byte{
		0x7F, 'E', 'L', 'F',
		byte(class), byte(enc), 1, byte(ELFOSABI_LINUX),
		0, 0, 0, 0, 0, 0, 0, 0,
	}
}

func TestProbeIdentityAccepts32LittleEndian(t *testing.T) {
	id, err := probeIdentity(validIdent(Class32, EncodingLSB))
	require.NoError(t, err)
	assert.Equal(t, Class32, id.class)
	assert.Equal(t, EncodingLSB, id.encoding)
	assert.Equal(t, OSABI(ELFOSABI_LINUX), id.abi)
}

func TestProbeIdentityAccepts64BigEndian(t *testing.T) {
	id, err := probeIdentity(validIdent(Class64, EncodingMSB))
	require.NoError(t, err)
	assert.Equal(t, Class64, id.class)
	assert.Equal(t, EncodingMSB, id.encoding)
}

func TestProbeIdentityRejectsBadMagic(t *testing.T) {
	buf := validIdent(Class64, EncodingLSB)
	buf[0] = 0x00
	_, err := probeIdentity(buf)
	assert.True(t, errors.Is(err, ErrBadMagic))
}

func TestProbeIdentityRejectsBadClass(t *testing.T) {
	buf := validIdent(Class64, EncodingLSB)
	buf[4] = 9
	_, err := probeIdentity(buf)
	assert.True(t, errors.Is(err, ErrBadClass))
}

func TestProbeIdentityRejectsBadEncoding(t *testing.T) {
	buf := validIdent(Class64, EncodingLSB)
	buf[5] = 9
	_, err := probeIdentity(buf)
	assert.True(t, errors.Is(err, ErrBadEncoding))
}

func TestProbeIdentityRejectsTruncated(t *testing.T) {
	_, err := probeIdentity([]byte{0x7F, 'E', 'L', 'F'})
	assert.True(t, errors.Is(err, ErrTruncated))
}
