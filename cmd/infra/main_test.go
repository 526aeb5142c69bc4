package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deploy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("domain: example.org\nstack_name: blog\n"), 0o644))

	cfg, err := resolveConfig(path, "", "")
	require.NoError(t, err)
	require.Equal(t, "example.org", cfg.Domain)
	require.Equal(t, "blog", cfg.StackName)
}

func TestResolveConfigFlagOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deploy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("domain: example.org\n"), 0o644))

	cfg, err := resolveConfig(path, "other.org", "custom")
	require.NoError(t, err)
	require.Equal(t, "other.org", cfg.Domain)
	require.Equal(t, "custom", cfg.StackName)
}

func TestResolveConfigDomainOnly(t *testing.T) {
	cfg, err := resolveConfig(filepath.Join(t.TempDir(), "absent.yaml"), "example.org", "")
	require.NoError(t, err)
	require.Equal(t, "example.org", cfg.Domain)
}

func TestResolveConfigMissingEverything(t *testing.T) {
	_, err := resolveConfig(filepath.Join(t.TempDir(), "absent.yaml"), "", "")
	require.Error(t, err)
}

func TestAmbientEnv(t *testing.T) {
	t.Setenv("CDK_DEFAULT_ACCOUNT", "")
	t.Setenv("CDK_DEFAULT_REGION", "")
	require.Nil(t, ambientEnv())

	t.Setenv("CDK_DEFAULT_ACCOUNT", "123456789012")
	t.Setenv("CDK_DEFAULT_REGION", "us-east-2")
	env := ambientEnv()
	require.NotNil(t, env)
	require.Equal(t, "123456789012", *env.Account)
	require.Equal(t, "us-east-2", *env.Region)
}
