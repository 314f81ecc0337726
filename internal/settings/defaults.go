package settings

// Default returns the canonical default record. It is the source of truth
// for the field set and field types; normalization fills every gap from it.
func Default() Settings {
	return Settings{
		ChatModelProvider:    "OPENAI",
		ChatModelName:        "gpt-4o",
		ChatModelTemperature: 0.0,
		ChatModelKwargs:      map[string]string{},
		ChatModelCtxLength:   120000,
		ChatModelCtxHistory:  0.7,
		ChatModelRlRequests:  0,
		ChatModelRlInput:     0,
		ChatModelRlOutput:    0,

		UtilModelProvider:    "OPENAI",
		UtilModelName:        "gpt-4o-mini",
		UtilModelTemperature: 0.0,
		UtilModelKwargs:      map[string]string{},
		UtilModelCtxLength:   120000,
		UtilModelCtxInput:    0.7,
		UtilModelRlRequests:  60,
		UtilModelRlInput:     0,
		UtilModelRlOutput:    0,

		EmbedModelProvider:   "OPENAI",
		EmbedModelName:       "text-embedding-3-small",
		EmbedModelKwargs:     map[string]string{},
		EmbedModelRlRequests: 0,
		EmbedModelRlInput:    0,

		BrowserModelProvider:    "OPENAI",
		BrowserModelName:        "gpt-4o",
		BrowserModelVision:      false,
		BrowserModelTemperature: 0.0,
		BrowserModelKwargs:      map[string]string{},

		AgentPromptsSubdir:   "default",
		AgentMemorySubdir:    "default",
		AgentKnowledgeSubdir: "custom",

		APIKeys: map[string]string{},

		AuthLogin:    "",
		AuthPassword: "",
		RootPassword: "",

		RFCAutoDocker: true,
		RFCURL:        "localhost",
		RFCPassword:   "",
		RFCPortHTTP:   55080,
		RFCPortSSH:    55022,

		STTModelSize:        "base",
		STTLanguage:         "en",
		STTSilenceThreshold: 0.3,
		STTSilenceDuration:  1000,
		STTWaitingTimeout:   2000,
	}
}
