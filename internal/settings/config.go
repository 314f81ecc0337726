package settings

import (
	"strings"

	"github.com/mexicanamerican/agent-zero/internal/agent"
)

// BuildAgentConfig derives a per-context agent configuration from the
// record, including the code-execution endpoint: inside a container the
// instance itself is the target; otherwise the RFC destination is used.
func BuildAgentConfig(set Settings, env Modes) agent.Config {
	cfg := agent.Config{
		ChatModelProvider:    set.ChatModelProvider,
		ChatModelName:        set.ChatModelName,
		ChatModelTemperature: set.ChatModelTemperature,
		ChatModelKwargs:      set.ChatModelKwargs,

		UtilModelProvider:    set.UtilModelProvider,
		UtilModelName:        set.UtilModelName,
		UtilModelTemperature: set.UtilModelTemperature,
		UtilModelKwargs:      set.UtilModelKwargs,

		EmbedModelProvider: set.EmbedModelProvider,
		EmbedModelName:     set.EmbedModelName,
		EmbedModelKwargs:   set.EmbedModelKwargs,

		BrowserModelProvider: set.BrowserModelProvider,
		BrowserModelName:     set.BrowserModelName,
		BrowserModelVision:   set.BrowserModelVision,
		BrowserModelKwargs:   set.BrowserModelKwargs,

		PromptsSubdir:   set.AgentPromptsSubdir,
		MemorySubdir:    set.AgentMemorySubdir,
		KnowledgeSubdir: set.AgentKnowledgeSubdir,

		CodeExecSSHUser: "root",
	}

	if env.IsContainerized() {
		cfg.CodeExecSSHAddr = "localhost"
		cfg.CodeExecSSHPort = 22
		cfg.CodeExecHTTPPort = 80
		return cfg
	}

	cfg.CodeExecSSHAddr = rfcHost(set.RFCURL)
	cfg.CodeExecSSHPort = set.RFCPortSSH
	cfg.CodeExecHTTPPort = set.RFCPortHTTP
	return cfg
}

// rfcHost reduces an RFC destination URL to a bare host name.
func rfcHost(url string) string {
	host := url
	if _, rest, ok := strings.Cut(host, "//"); ok {
		host = rest
	}
	if h, _, ok := strings.Cut(host, ":"); ok {
		host = h
	}
	return strings.TrimSuffix(host, "/")
}
