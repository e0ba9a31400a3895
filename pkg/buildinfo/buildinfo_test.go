package buildinfo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apicommons/pkg/buildinfo"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "build.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func assertTimestamp(t *testing.T, v any) {
	t.Helper()
	s, ok := v.(string)
	require.True(t, ok, "timestamp must be a string")
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
	assert.Equal(t, time.UTC, ts.Location())
}

func TestRead(t *testing.T) {
	t.Parallel()

	b := buildinfo.Read()
	assert.NotEmpty(t, b.Module)
	assert.NotEmpty(t, b.Version)
	assert.NotEmpty(t, b.GoVersion)
	assert.NotEmpty(t, b.Revision)
	assert.NotEmpty(t, b.Time)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("complete file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, `
groupId: fr.example
artifactId: billing-api
version: 1.4.0
name: Billing API
description: Invoices and payments
developers: [ann@example.fr, bob@example.fr]
owners: team-billing@example.fr
organization: Example
buildNumber: "512"
scmBranch: main
`)
		meta := buildinfo.ReadFile(path)
		assert.Empty(t, meta.Err())
		_, err := buildinfo.Load(path)
		assert.NoError(t, err)
		assert.Equal(t, "fr.example", meta[buildinfo.KeyGroupID])
		assert.Equal(t, "billing-api", meta[buildinfo.KeyArtifactID])
		assert.Equal(t, "1.4.0", meta[buildinfo.KeyVersion])
		assert.Equal(t, "Billing API", meta[buildinfo.KeyName])
		assert.Equal(t, "ann@example.fr, bob@example.fr", meta[buildinfo.KeyDevelopers])
		assert.Equal(t, "team-billing@example.fr", meta[buildinfo.KeyOwners])
		assert.Equal(t, "512", meta[buildinfo.KeyBuildNumber])
		assert.Equal(t, "main", meta[buildinfo.KeyScmBranch])
		assertTimestamp(t, meta[buildinfo.KeyTimestamp])
	})

	t.Run("partial file degrades", func(t *testing.T) {
		t.Parallel()
		meta := buildinfo.ReadFile(writeFile(t, "version: 2.0.0\n"))
		assert.Equal(t, "2.0.0", meta[buildinfo.KeyVersion])
		assert.Equal(t, buildinfo.Unknown, meta[buildinfo.KeyGroupID])
		assert.Equal(t, buildinfo.Unknown, meta[buildinfo.KeyBuildNumber])
		assert.Equal(t, "", meta[buildinfo.KeyDescription])
		assert.Equal(t, "", meta[buildinfo.KeyDevelopers])
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "absent.yaml")
		meta := buildinfo.ReadFile(path)
		assert.Len(t, meta, 2)
		assert.Equal(t, buildinfo.UnavailableMessage, meta.Err())
		assert.NotContains(t, meta[buildinfo.KeyError], path, "file path must stay server side")
		assertTimestamp(t, meta[buildinfo.KeyTimestamp])

		loaded, err := buildinfo.Load(path)
		require.ErrorIs(t, err, buildinfo.ErrMetadataNotFound)
		assert.Contains(t, err.Error(), "absent.yaml")
		assert.Equal(t, buildinfo.UnavailableMessage, loaded.Err())
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "developers: {a: b}\n")
		meta := buildinfo.ReadFile(path)
		assert.Len(t, meta, 2)
		assert.Equal(t, buildinfo.UnavailableMessage, meta.Err())

		_, err := buildinfo.Load(path)
		assert.ErrorIs(t, err, buildinfo.ErrInvalidMetadata)
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	_, err := buildinfo.Parse([]byte("version: [1, 2"))
	assert.ErrorIs(t, err, buildinfo.ErrInvalidMetadata)

	meta, err := buildinfo.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, buildinfo.Unknown, meta[buildinfo.KeyVersion])
}

func TestInfo(t *testing.T) {
	t.Parallel()

	info := buildinfo.Info("billing-api", "1.4.0")
	assert.Equal(t, "billing-api", info["service"])
	assert.Equal(t, "1.4.0", info["version"])
	assertTimestamp(t, info["timestamp"])
	assert.Len(t, info, 3)
}

func TestInfoFrom(t *testing.T) {
	t.Parallel()

	info := buildinfo.InfoFrom("billing-api", buildinfo.Metadata{"version": "1.4.0", "name": ""})
	assert.Equal(t, "1.4.0", info["version"])
	assert.Equal(t, "", info["name"], "present keys are kept even when empty")
	assert.Equal(t, buildinfo.Unknown, info["groupId"])
	assert.Equal(t, buildinfo.Unknown, info["artifactId"])
	assertTimestamp(t, info["timestamp"])
}

func TestFullInfo(t *testing.T) {
	t.Parallel()

	info := buildinfo.FullInfo("billing-api", "1.4.0", "Invoices", "dev@example.fr", "owner@example.fr")
	assert.Equal(t, "Invoices", info["description"])
	assert.Equal(t, "dev@example.fr", info["developerContact"])
	assert.Equal(t, "owner@example.fr", info["projectOwnerContact"])
	assertTimestamp(t, info["timestamp"])

	full := buildinfo.FullInfoFrom("billing-api", buildinfo.Metadata{"organization": "Example"})
	assert.Equal(t, "Example", full["organization"])
	assert.Equal(t, "", full["description"])
	assert.Equal(t, "", full["developers"])
	assert.Equal(t, "", full["owners"])
	assert.Equal(t, buildinfo.Unknown, full["version"])
}
