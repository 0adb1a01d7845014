package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"zenmai/internal/shared/errors"
)

type sampleConfig struct {
	Name string `mapstructure:"name" validate:"required"`
	Port int    `mapstructure:"port" validate:"required,min=1,max=65535"`
}

func TestValidateStruct_Valid(t *testing.T) {
	err := ValidateStruct(&sampleConfig{Name: "zenmai", Port: 5000})
	assert.NoError(t, err)
}

func TestValidateStruct_MissingRequired(t *testing.T) {
	err := ValidateStruct(&sampleConfig{Port: 5000})

	assert.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	appErr := errors.GetAppError(err)
	assert.Contains(t, appErr.Details, "name is required")
}

func TestValidateStruct_OutOfRange(t *testing.T) {
	err := ValidateStruct(&sampleConfig{Name: "zenmai", Port: 70000})

	assert.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	appErr := errors.GetAppError(err)
	assert.Contains(t, appErr.Details, "port must be at most 65535")
}
