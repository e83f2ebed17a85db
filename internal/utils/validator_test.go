package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitValidator_UnitCode(t *testing.T) {
	InitValidator()
	require.NotNil(t, Validate)

	type line struct {
		Unit string `validate:"unitcode"`
	}
	assert.NoError(t, Validate.Struct(line{Unit: "kg"}))
	assert.NoError(t, Validate.Struct(line{Unit: "un"}))
	assert.Error(t, Validate.Struct(line{Unit: "taza"}))

	InitValidator()
	assert.NoError(t, Validate.Struct(line{Unit: "ml"}))
}
