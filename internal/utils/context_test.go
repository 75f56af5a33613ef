// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/fleet-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPrincipalFromContext_Found(t *testing.T) {
	user := models.User{UserID: 42, Email: "c@x.com", Role: models.RoleCaptain}
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, user)

	got, ok := GetPrincipalFromContext(ctx)

	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestGetPrincipalFromContext_Missing(t *testing.T) {
	_, ok := GetPrincipalFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "not-a-user")

	_, ok := GetPrincipalFromContext(ctx)

	assert.False(t, ok)
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "principal", PrincipalCtxKey.String())
}
