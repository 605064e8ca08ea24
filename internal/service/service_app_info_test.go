// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/sats-ledger/models"
)

func TestAppInfoService_GetAppVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("v1.2.0", "", "abc123"))

	info := svc.GetAppVersion(context.Background())
	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}
