package settings

import (
	"strings"

	"github.com/mexicanamerican/agent-zero/internal/models"
	"github.com/mexicanamerican/agent-zero/internal/secrets"
	"github.com/mexicanamerican/agent-zero/internal/settings/envline"
	"github.com/mexicanamerican/agent-zero/internal/shared/paths"
)

// providers with a dedicated API-key field, in display order
var apiKeyProviders = []struct{ name, title string }{
	{"openai", "OpenAI API Key"},
	{"anthropic", "Anthropic API Key"},
	{"groq", "Groq API Key"},
	{"google", "Google API Key"},
	{"deepseek", "DeepSeek API Key"},
	{"openrouter", "OpenRouter API Key"},
	{"sambanova", "Sambanova API Key"},
	{"mistralai", "MistralAI API Key"},
	{"huggingface", "HuggingFace API Key"},
}

// Presenter builds the UI schema for a settings record and holds the
// collaborators consulted while doing so. Runtime-mode flags are read at
// schema-build time, never cached.
type Presenter struct {
	secrets SecretReader
	env     Modes

	// Subdirs lists selectable subdirectories per category; defaults to
	// paths.Subdirectories.
	Subdirs func(category string, exclude ...string) []string

	// KnownKey resolves an already-stored API key for a provider; defaults
	// to models.KnownAPIKey against the secret reader.
	KnownKey func(provider string) string
}

// NewPresenter creates a presenter over the given secret reader and runtime
// modes.
func NewPresenter(sec SecretReader, env Modes) *Presenter {
	p := &Presenter{secrets: sec, env: env}
	p.Subdirs = paths.Subdirectories
	p.KnownKey = func(provider string) string {
		return models.KnownAPIKey(sec, provider)
	}
	return p
}

// Schema renders the record as the ordered sections-of-fields form.
func (p *Presenter) Schema(set Settings) Schema {
	return Schema{Sections: []Section{
		p.agentSection(set),
		p.chatModelSection(set),
		p.utilModelSection(set),
		p.embedModelSection(set),
		p.browserModelSection(set),
		p.sttSection(set),
		p.apiKeysSection(set),
		p.authSection(),
		p.devSection(set),
	}}
}

func (p *Presenter) agentSection(set Settings) Section {
	return Section{
		ID:          "agent",
		Title:       "Agent Config",
		Description: "Agent parameters.",
		Fields: []Field{
			{
				ID:          "agent_prompts_subdir",
				Title:       "Prompts Subdirectory",
				Description: "Subdirectory of /prompts folder to use for agent prompts. Used to adjust agent behaviour.",
				Type:        FieldSelect,
				Value:       set.AgentPromptsSubdir,
				Options:     subdirOptions(p.Subdirs(paths.Prompts)),
			},
			{
				ID:          "agent_memory_subdir",
				Title:       "Memory Subdirectory",
				Description: "Subdirectory of /memory folder to use for agent memory storage. Used to separate memory storage between different instances.",
				Type:        FieldSelect,
				Value:       set.AgentMemorySubdir,
				Options:     subdirOptions(p.Subdirs(paths.Memory, paths.EmbeddingsSubdir)),
			},
			{
				ID:          "agent_knowledge_subdir",
				Title:       "Knowledge subdirectory",
				Description: "Subdirectory of /knowledge folder to use for agent knowledge import. 'default' subfolder is always imported and contains framework knowledge.",
				Type:        FieldSelect,
				Value:       set.AgentKnowledgeSubdir,
				Options:     subdirOptions(p.Subdirs(paths.Knowledge, paths.DefaultKnowledge)),
			},
		},
	}
}

func (p *Presenter) chatModelSection(set Settings) Section {
	return Section{
		ID:          "chat_model",
		Title:       "Chat Model",
		Description: "Selection and settings for main chat model used by Agent Zero",
		Fields: []Field{
			{
				ID:          "chat_model_provider",
				Title:       "Chat model provider",
				Description: "Select provider for main chat model used by Agent Zero",
				Type:        FieldSelect,
				Value:       set.ChatModelProvider,
				Options:     providerOptions(),
			},
			{
				ID:          "chat_model_name",
				Title:       "Chat model name",
				Description: "Exact name of model from selected provider",
				Type:        FieldText,
				Value:       set.ChatModelName,
			},
			rangeField("chat_model_temperature", "Chat model temperature",
				"Determines the randomness of generated responses. 0 is deterministic, 1 is random",
				set.ChatModelTemperature, 0, 1, 0.01),
			{
				ID:          "chat_model_ctx_length",
				Title:       "Chat model context length",
				Description: "Maximum number of tokens in the context window for LLM. System prompt, chat history, RAG and response all count towards this limit.",
				Type:        FieldNumber,
				Value:       set.ChatModelCtxLength,
			},
			rangeField("chat_model_ctx_history", "Context window space for chat history",
				"Portion of context window dedicated to chat history visible to the agent. Chat history will automatically be optimized to fit. Smaller size will result in shorter and more summarized history. The remaining space will be used for system prompt, RAG and response.",
				set.ChatModelCtxHistory, 0.01, 1, 0.01),
			{
				ID:          "chat_model_rl_requests",
				Title:       "Requests per minute limit",
				Description: "Limits the number of requests per minute to the chat model. Waits if the limit is exceeded. Set to 0 to disable rate limiting.",
				Type:        FieldNumber,
				Value:       set.ChatModelRlRequests,
			},
			{
				ID:          "chat_model_rl_input",
				Title:       "Input tokens per minute limit",
				Description: "Limits the number of input tokens per minute to the chat model. Waits if the limit is exceeded. Set to 0 to disable rate limiting.",
				Type:        FieldNumber,
				Value:       set.ChatModelRlInput,
			},
			{
				ID:          "chat_model_rl_output",
				Title:       "Output tokens per minute limit",
				Description: "Limits the number of output tokens per minute to the chat model. Waits if the limit is exceeded. Set to 0 to disable rate limiting.",
				Type:        FieldNumber,
				Value:       set.ChatModelRlOutput,
			},
			{
				ID:          "chat_model_kwargs",
				Title:       "Chat model additional parameters",
				Description: "Any other parameters supported by the model. Format is KEY=VALUE on individual lines, just like .env file.",
				Type:        FieldTextarea,
				Value:       envline.Encode(set.ChatModelKwargs),
			},
		},
	}
}

func (p *Presenter) utilModelSection(set Settings) Section {
	return Section{
		ID:          "util_model",
		Title:       "Utility model",
		Description: "Smaller, cheaper, faster model for handling utility tasks like organizing memory, preparing prompts, summarizing.",
		Fields: []Field{
			{
				ID:          "util_model_provider",
				Title:       "Utility model provider",
				Description: "Select provider for utility model used by the framework",
				Type:        FieldSelect,
				Value:       set.UtilModelProvider,
				Options:     providerOptions(),
			},
			{
				ID:          "util_model_name",
				Title:       "Utility model name",
				Description: "Exact name of model from selected provider",
				Type:        FieldText,
				Value:       set.UtilModelName,
			},
			rangeField("util_model_temperature", "Utility model temperature",
				"Determines the randomness of generated responses. 0 is deterministic, 1 is random",
				set.UtilModelTemperature, 0, 1, 0.01),
			{
				ID:          "util_model_rl_requests",
				Title:       "Requests per minute limit",
				Description: "Limits the number of requests per minute to the utility model. Waits if the limit is exceeded. Set to 0 to disable rate limiting.",
				Type:        FieldNumber,
				Value:       set.UtilModelRlRequests,
			},
			{
				ID:          "util_model_rl_input",
				Title:       "Input tokens per minute limit",
				Description: "Limits the number of input tokens per minute to the utility model. Waits if the limit is exceeded. Set to 0 to disable rate limiting.",
				Type:        FieldNumber,
				Value:       set.UtilModelRlInput,
			},
			{
				ID:          "util_model_rl_output",
				Title:       "Output tokens per minute limit",
				Description: "Limits the number of output tokens per minute to the utility model. Waits if the limit is exceeded. Set to 0 to disable rate limiting.",
				Type:        FieldNumber,
				Value:       set.UtilModelRlOutput,
			},
			{
				ID:          "util_model_kwargs",
				Title:       "Utility model additional parameters",
				Description: "Any other parameters supported by the model. Format is KEY=VALUE on individual lines, just like .env file.",
				Type:        FieldTextarea,
				Value:       envline.Encode(set.UtilModelKwargs),
			},
		},
	}
}

func (p *Presenter) embedModelSection(set Settings) Section {
	return Section{
		ID:          "embed_model",
		Title:       "Embedding Model",
		Description: "Settings for the embedding model used by Agent Zero.",
		Fields: []Field{
			{
				ID:          "embed_model_provider",
				Title:       "Embedding model provider",
				Description: "Select provider for embedding model used by the framework",
				Type:        FieldSelect,
				Value:       set.EmbedModelProvider,
				Options:     providerOptions(),
			},
			{
				ID:          "embed_model_name",
				Title:       "Embedding model name",
				Description: "Exact name of model from selected provider",
				Type:        FieldText,
				Value:       set.EmbedModelName,
			},
			{
				ID:          "embed_model_rl_requests",
				Title:       "Requests per minute limit",
				Description: "Limits the number of requests per minute to the embedding model. Waits if the limit is exceeded. Set to 0 to disable rate limiting.",
				Type:        FieldNumber,
				Value:       set.EmbedModelRlRequests,
			},
			{
				ID:          "embed_model_rl_input",
				Title:       "Input tokens per minute limit",
				Description: "Limits the number of input tokens per minute to the embedding model. Waits if the limit is exceeded. Set to 0 to disable rate limiting.",
				Type:        FieldNumber,
				Value:       set.EmbedModelRlInput,
			},
			{
				ID:          "embed_model_kwargs",
				Title:       "Embedding model additional parameters",
				Description: "Any other parameters supported by the model. Format is KEY=VALUE on individual lines, just like .env file.",
				Type:        FieldTextarea,
				Value:       envline.Encode(set.EmbedModelKwargs),
			},
		},
	}
}

func (p *Presenter) browserModelSection(set Settings) Section {
	return Section{
		ID:          "browser_model",
		Title:       "Web Browser Model",
		Description: "Settings for the web browser model used by the agentic browsing framework to handle web interactions.",
		Fields: []Field{
			{
				ID:          "browser_model_provider",
				Title:       "Web Browser model provider",
				Description: "Select provider for web browser model",
				Type:        FieldSelect,
				Value:       set.BrowserModelProvider,
				Options:     providerOptions(),
			},
			{
				ID:          "browser_model_name",
				Title:       "Web Browser model name",
				Description: "Exact name of model from selected provider",
				Type:        FieldText,
				Value:       set.BrowserModelName,
			},
			{
				ID:          "browser_model_vision",
				Title:       "Use Vision",
				Description: "Models capable of Vision can use it to analyze web pages from screenshots. Increases quality but also token usage.",
				Type:        FieldSwitch,
				Value:       set.BrowserModelVision,
			},
			rangeField("browser_model_temperature", "Web Browser model temperature",
				"Determines the randomness of generated responses. 0 is deterministic, 1 is random",
				set.BrowserModelTemperature, 0, 1, 0.01),
			{
				ID:          "browser_model_kwargs",
				Title:       "Web Browser model additional parameters",
				Description: "Any other parameters supported by the model. Format is KEY=VALUE on individual lines, just like .env file.",
				Type:        FieldTextarea,
				Value:       envline.Encode(set.BrowserModelKwargs),
			},
		},
	}
}

func (p *Presenter) sttSection(set Settings) Section {
	return Section{
		ID:          "stt",
		Title:       "Speech to Text",
		Description: "Voice transcription preferences and server turn detection settings.",
		Fields: []Field{
			{
				ID:          "stt_model_size",
				Title:       "Model Size",
				Description: "Select the speech recognition model size",
				Type:        FieldSelect,
				Value:       set.STTModelSize,
				Options: []Option{
					{Value: "tiny", Label: "Tiny (39M, English)"},
					{Value: "base", Label: "Base (74M, English)"},
					{Value: "small", Label: "Small (244M, English)"},
					{Value: "medium", Label: "Medium (769M, English)"},
					{Value: "large", Label: "Large (1.5B, Multilingual)"},
					{Value: "turbo", Label: "Turbo (Multilingual)"},
				},
			},
			{
				ID:          "stt_language",
				Title:       "Language Code",
				Description: "Language code (e.g. en, fr, it)",
				Type:        FieldText,
				Value:       set.STTLanguage,
			},
			rangeField("stt_silence_threshold", "Silence threshold",
				"Silence detection threshold. Lower values are more sensitive.",
				set.STTSilenceThreshold, 0, 1, 0.01),
			{
				ID:          "stt_silence_duration",
				Title:       "Silence duration (ms)",
				Description: "Duration of silence before the server considers speaking to have ended.",
				Type:        FieldText,
				Value:       set.STTSilenceDuration,
			},
			{
				ID:          "stt_waiting_timeout",
				Title:       "Waiting timeout (ms)",
				Description: "Duration before the server closes the microphone.",
				Type:        FieldText,
				Value:       set.STTWaitingTimeout,
			},
		},
	}
}

func (p *Presenter) apiKeysSection(set Settings) Section {
	fields := make([]Field, 0, len(apiKeyProviders))
	for _, prov := range apiKeyProviders {
		fields = append(fields, p.apiKeyField(set, prov.name, prov.title))
	}
	return Section{
		ID:          "api_keys",
		Title:       "API Keys",
		Description: "API keys for model providers and services used by Agent Zero.",
		Fields:      fields,
	}
}

// apiKeyField renders a masked field whose value is the placeholder when a
// usable key is already known, either from the record or the secret store.
func (p *Presenter) apiKeyField(set Settings, provider, title string) Field {
	key := set.APIKeys[provider]
	if key == "" {
		key = p.KnownKey(provider)
	}
	value := ""
	if key != "" && key != models.NoKey {
		value = PasswordPlaceholder
	}
	return Field{
		ID:    "api_key_" + provider,
		Title: title,
		Type:  FieldPassword,
		Value: value,
	}
}

func (p *Presenter) authSection() Section {
	login, _ := p.secrets.Get(secrets.KeyAuthLogin)
	fields := []Field{
		{
			ID:          "auth_login",
			Title:       "UI Login",
			Description: "Set user name for web UI",
			Type:        FieldText,
			Value:       login,
		},
		{
			ID:          "auth_password",
			Title:       "UI Password",
			Description: "Set user password for web UI",
			Type:        FieldPassword,
			Value:       p.secretPlaceholder(secrets.KeyAuthPassword),
		},
	}

	if p.env.IsContainerized() {
		fields = append(fields, Field{
			ID:          "root_password",
			Title:       "root Password",
			Description: "Change linux root password in the container. This password can be used for SSH access. Original password was randomly generated during setup.",
			Type:        FieldPassword,
			Value:       "",
		})
	}

	return Section{
		ID:          "auth",
		Title:       "Authentication",
		Description: "Settings for authentication to use Agent Zero Web UI.",
		Fields:      fields,
	}
}

func (p *Presenter) devSection(set Settings) Section {
	var fields []Field

	if p.env.IsDevelopment() {
		fields = append(fields, Field{
			ID:          "rfc_url",
			Title:       "RFC Destination URL",
			Description: "URL of the containerized instance for remote function calls. Do not specify port here.",
			Type:        FieldText,
			Value:       set.RFCURL,
		})
	}

	fields = append(fields, Field{
		ID:          "rfc_password",
		Title:       "RFC Password",
		Description: "Password for remote function calls. Passwords must match on both instances. RFCs can not be used with empty password.",
		Type:        FieldPassword,
		Value:       p.secretPlaceholder(secrets.KeyRFCPassword),
	})

	if p.env.IsDevelopment() {
		fields = append(fields,
			Field{
				ID:          "rfc_port_http",
				Title:       "RFC HTTP port",
				Description: "HTTP port of the containerized instance.",
				Type:        FieldText,
				Value:       set.RFCPortHTTP,
			},
			Field{
				ID:          "rfc_port_ssh",
				Title:       "RFC SSH port",
				Description: "SSH port of the containerized instance.",
				Type:        FieldText,
				Value:       set.RFCPortSSH,
			},
		)
	}

	return Section{
		ID:          "dev",
		Title:       "Development",
		Description: "Parameters for framework development. RFCs (remote function calls) are used to call functions on another instance. You can develop and debug natively on your local system while redirecting some functions to an instance running in a container.",
		Fields:      fields,
	}
}

// secretPlaceholder returns the placeholder token when a non-empty secret is
// stored under key, else the empty string.
func (p *Presenter) secretPlaceholder(key string) string {
	if val, ok := p.secrets.Get(key); ok && val != "" {
		return PasswordPlaceholder
	}
	return ""
}

// Apply overlays a submitted schema onto the current record and returns the
// normalized result. Fields still holding the placeholder token are skipped,
// so an untouched secret survives any round-trip; kwargs fields are decoded
// from their KEY=VALUE text form, and api_key_<provider> fields land in the
// api_keys mapping under the provider name.
func Apply(schema Schema, current Settings) Settings {
	m := ToMap(current)
	apiKeys, _ := m["api_keys"].(map[string]string)

	for _, section := range schema.Sections {
		for _, field := range section.Fields {
			if field.Value == PasswordPlaceholder {
				continue
			}
			switch {
			case strings.HasSuffix(field.ID, "_kwargs"):
				if text, ok := field.Value.(string); ok {
					m[field.ID] = envline.Decode(text)
				}
			case strings.HasPrefix(field.ID, "api_key_"):
				key, ok := coerceString(field.Value)
				if ok && key != "" {
					apiKeys[strings.TrimPrefix(field.ID, "api_key_")] = key
				}
			default:
				m[field.ID] = field.Value
			}
		}
	}
	return Normalize(m)
}

func providerOptions() []Option {
	opts := make([]Option, 0, len(models.Providers))
	for _, p := range models.Providers {
		opts = append(opts, Option{Value: p.Name, Label: p.Label})
	}
	return opts
}

func subdirOptions(names []string) []Option {
	opts := make([]Option, 0, len(names))
	for _, name := range names {
		opts = append(opts, Option{Value: name, Label: name})
	}
	return opts
}

func rangeField(id, title, description string, value, min, max, step float64) Field {
	return Field{
		ID:          id,
		Title:       title,
		Description: description,
		Type:        FieldRange,
		Value:       value,
		Min:         &min,
		Max:         &max,
		Step:        &step,
	}
}
