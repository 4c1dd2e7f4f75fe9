package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "cli.jsonc", "-f", "http://localhost:8081"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-c", "cli.jsonc"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=cli.yaml", "-f", "x"},
			allowed: []string{"-c", "-config"},
			want:    []string{"-config=cli.yaml"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "dash-prefixed token is not a value",
			args:    []string{"-c", "-l", "debug"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "value with dashes in equals form",
			args:    []string{"-config=--odd.json"},
			allowed: []string{"-config"},
			want:    []string{"-config=--odd.json"},
		},
		{
			name:    "repeated flag preserved in order",
			args:    []string{"-c", "one.json", "-c", "two.json"},
			allowed: []string{"-c"},
			want:    []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFile(t *testing.T) {
	assert.Equal(t, "/etc/ejc.jsonc", ConfigFile([]string{"-c", "/etc/ejc.jsonc"}))
	assert.Equal(t, "/etc/ejc.yaml", ConfigFile([]string{"-f", "x", "-config", "/etc/ejc.yaml"}))
	assert.Equal(t, "b.json", ConfigFile([]string{"-c", "a.json", "--config=b.json"}))
	assert.Empty(t, ConfigFile([]string{"-x", "1"}))
}

func TestEnvFile(t *testing.T) {
	assert.Equal(t, ".env.local", EnvFile([]string{"-env", ".env.local", "-c", "x.json"}))
	assert.Empty(t, EnvFile(nil))
}
