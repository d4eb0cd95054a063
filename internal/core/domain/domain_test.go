package domain_test

import (
	"testing"

	"github.com/stampkit/stamp/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestEnvironmentKey_FieldsOrder(t *testing.T) {
	key := domain.EnvironmentKey{
		ToolVersion:    "1.0.0",
		RuntimeVersion: "go1.25.3",
		Compiler:       "/usr/bin/c++",
		InstallPrefix:  "/usr/local",
		ConfigBase:     "release",
		CFlags:         "-O2",
		CPPFlags:       "-DNDEBUG",
		CXXFlags:       "-std=c++17",
	}

	fields := key.Fields()
	assert.Equal(t, []string{
		"1.0.0",
		"go1.25.3",
		"/usr/bin/c++",
		"/usr/local",
		"release",
		"-O2",
		"-DNDEBUG",
		"-std=c++17",
	}, fields, "canonical field order is part of the on-disk digest contract")
}

func TestEnvironmentKey_ZeroValueFields(t *testing.T) {
	var key domain.EnvironmentKey
	fields := key.Fields()
	assert.Len(t, fields, 8)
	for _, f := range fields {
		assert.Empty(t, f)
	}
}
