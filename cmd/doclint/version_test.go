package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommandJSON(t *testing.T) {
	origFormat := versionFormat
	defer func() { versionFormat = origFormat }()
	versionFormat = "json"

	var out bytes.Buffer
	versionCmd.SetOut(&out)
	defer versionCmd.SetOut(nil)

	require.NoError(t, versionCmd.RunE(versionCmd, nil))

	var payload versionPayload
	require.NoError(t, json.Unmarshal(out.Bytes(), &payload))
	assert.Equal(t, "doclint", payload.Tool)
	assert.NotEmpty(t, payload.Version)
}

func TestVersionCommandRejectsUnknownFormat(t *testing.T) {
	origFormat := versionFormat
	defer func() { versionFormat = origFormat }()
	versionFormat = "yaml"

	assert.Error(t, versionCmd.RunE(versionCmd, nil))
}
