package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dusk-indust/introspect/internal/intent"
)

func TestRegistries_SensitivityTiers(t *testing.T) {
	reg := Default()

	// Highest tier wins on the first substring hit.
	assert.Equal(t, intent.SensitivityCritical, reg.Sensitivity("apiToken"))
	assert.Equal(t, intent.SensitivityCritical, reg.Sensitivity("CLIENT_SECRET"))
	assert.Equal(t, intent.SensitivitySensitive, reg.Sensitivity("password"))
	assert.Equal(t, intent.SensitivitySensitive, reg.Sensitivity("creditCard"))
	assert.Equal(t, intent.SensitivityPrivate, reg.Sensitivity("userEmail"))
	assert.Equal(t, intent.SensitivityPublic, reg.Sensitivity("limit"))
}

func TestRegistries_WriteMethods(t *testing.T) {
	reg := Default()

	assert.True(t, reg.IsWriteMethod("save"))
	assert.True(t, reg.IsWriteMethod("delete"))
	// Read-style methods are not writes.
	assert.False(t, reg.IsWriteMethod("find"))
	assert.False(t, reg.IsWriteMethod("get"))
	assert.False(t, reg.IsWriteMethod("query"))
}

func TestRegistries_IsSystemModule(t *testing.T) {
	reg := Default()

	assert.True(t, reg.IsSystemModule("fs"))
	assert.True(t, reg.IsSystemModule("node:crypto"))
	assert.False(t, reg.IsSystemModule("express"))
}

func TestRegistries_IsCritical(t *testing.T) {
	reg := Default()

	assert.True(t, reg.IsCritical("jsonwebtoken-auth"))
	assert.True(t, reg.IsCritical("my-payment-sdk"))
	assert.False(t, reg.IsCritical("lodash"))
}

func TestRegistries_PurposeOf(t *testing.T) {
	reg := Default()

	assert.Equal(t, "Web framework", reg.PurposeOf("express"))
	assert.Equal(t, "General dependency", reg.PurposeOf("left-pad"))
}
