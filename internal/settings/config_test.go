package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAgentConfigContainerized(t *testing.T) {
	cfg := BuildAgentConfig(Default(), &fakeEnv{containerized: true})

	assert.Equal(t, "localhost", cfg.CodeExecSSHAddr)
	assert.Equal(t, 22, cfg.CodeExecSSHPort)
	assert.Equal(t, 80, cfg.CodeExecHTTPPort)
	assert.Equal(t, "root", cfg.CodeExecSSHUser)
}

func TestBuildAgentConfigDevelopment(t *testing.T) {
	set := Default()
	set.RFCURL = "http://docker.local:8080/"
	set.RFCPortSSH = 55022
	set.RFCPortHTTP = 55080

	cfg := BuildAgentConfig(set, &fakeEnv{development: true})

	assert.Equal(t, "docker.local", cfg.CodeExecSSHAddr)
	assert.Equal(t, 55022, cfg.CodeExecSSHPort)
	assert.Equal(t, 55080, cfg.CodeExecHTTPPort)
}

func TestBuildAgentConfigCopiesModelSelections(t *testing.T) {
	set := Default()
	set.ChatModelName = "gpt-5"
	set.AgentMemorySubdir = "alt"

	cfg := BuildAgentConfig(set, &fakeEnv{development: true})

	assert.Equal(t, "gpt-5", cfg.ChatModelName)
	assert.Equal(t, "alt", cfg.MemorySubdir)
}

func TestRFCHost(t *testing.T) {
	cases := map[string]string{
		"localhost":             "localhost",
		"http://host":           "host",
		"https://host:123":      "host",
		"host:55080":            "host",
		"http://host/":          "host",
		"https://host.name:80/": "host.name",
	}
	for in, want := range cases {
		assert.Equal(t, want, rfcHost(in), "input %q", in)
	}
}
