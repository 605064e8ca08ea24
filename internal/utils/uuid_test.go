// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	gen := NewUUIDGenerator()

	first := gen.Generate()
	second := gen.Generate()

	assert.NotEqual(t, first, second)
	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.True(t, ValidID(first))
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("0190f5c2-7b1e-7cc4-9d2a-3a1b2c3d4e5f"))
	assert.False(t, ValidID("0190F5C2-7B1E-7CC4-9D2A-3A1B2C3D4E5F"))
	assert.False(t, ValidID("{0190f5c2-7b1e-7cc4-9d2a-3a1b2c3d4e5f}"))
	assert.False(t, ValidID("not-a-uuid"))
	assert.False(t, ValidID(""))
}
