package settings

// PasswordPlaceholder is the sentinel shown in place of any stored secret.
// A submitted field still holding it leaves the underlying secret untouched.
const PasswordPlaceholder = "****PSWD****"

// Settings is the canonical configuration record. Field declaration order
// fixes the key order of the persisted JSON document.
type Settings struct {
	ChatModelProvider    string            `json:"chat_model_provider"`
	ChatModelName        string            `json:"chat_model_name"`
	ChatModelTemperature float64           `json:"chat_model_temperature"`
	ChatModelKwargs      map[string]string `json:"chat_model_kwargs"`
	ChatModelCtxLength   int               `json:"chat_model_ctx_length"`
	ChatModelCtxHistory  float64           `json:"chat_model_ctx_history"`
	ChatModelRlRequests  int               `json:"chat_model_rl_requests"`
	ChatModelRlInput     int               `json:"chat_model_rl_input"`
	ChatModelRlOutput    int               `json:"chat_model_rl_output"`

	UtilModelProvider    string            `json:"util_model_provider"`
	UtilModelName        string            `json:"util_model_name"`
	UtilModelTemperature float64           `json:"util_model_temperature"`
	UtilModelKwargs      map[string]string `json:"util_model_kwargs"`
	UtilModelCtxLength   int               `json:"util_model_ctx_length"`
	UtilModelCtxInput    float64           `json:"util_model_ctx_input"`
	UtilModelRlRequests  int               `json:"util_model_rl_requests"`
	UtilModelRlInput     int               `json:"util_model_rl_input"`
	UtilModelRlOutput    int               `json:"util_model_rl_output"`

	EmbedModelProvider   string            `json:"embed_model_provider"`
	EmbedModelName       string            `json:"embed_model_name"`
	EmbedModelKwargs     map[string]string `json:"embed_model_kwargs"`
	EmbedModelRlRequests int               `json:"embed_model_rl_requests"`
	EmbedModelRlInput    int               `json:"embed_model_rl_input"`

	BrowserModelProvider    string            `json:"browser_model_provider"`
	BrowserModelName        string            `json:"browser_model_name"`
	BrowserModelVision      bool              `json:"browser_model_vision"`
	BrowserModelTemperature float64           `json:"browser_model_temperature"`
	BrowserModelKwargs      map[string]string `json:"browser_model_kwargs"`

	AgentPromptsSubdir   string `json:"agent_prompts_subdir"`
	AgentMemorySubdir    string `json:"agent_memory_subdir"`
	AgentKnowledgeSubdir string `json:"agent_knowledge_subdir"`

	APIKeys map[string]string `json:"api_keys"`

	AuthLogin    string `json:"auth_login"`
	AuthPassword string `json:"auth_password"`
	RootPassword string `json:"root_password"`

	RFCAutoDocker bool   `json:"rfc_auto_docker"`
	RFCURL        string `json:"rfc_url"`
	RFCPassword   string `json:"rfc_password"`
	RFCPortHTTP   int    `json:"rfc_port_http"`
	RFCPortSSH    int    `json:"rfc_port_ssh"`

	STTModelSize        string  `json:"stt_model_size"`
	STTLanguage         string  `json:"stt_language"`
	STTSilenceThreshold float64 `json:"stt_silence_threshold"`
	STTSilenceDuration  int     `json:"stt_silence_duration"`
	STTWaitingTimeout   int     `json:"stt_waiting_timeout"`
}

// FieldType tags how a UI field is rendered.
type FieldType string

// Field display types.
const (
	FieldText     FieldType = "text"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldRange    FieldType = "range"
	FieldTextarea FieldType = "textarea"
	FieldPassword FieldType = "password"
	FieldSwitch   FieldType = "switch"
)

// Option is one entry of a select field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field is one form control of the settings UI.
type Field struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        FieldType `json:"type"`
	Value       any       `json:"value"`
	Min         *float64  `json:"min,omitempty"`
	Max         *float64  `json:"max,omitempty"`
	Step        *float64  `json:"step,omitempty"`
	Options     []Option  `json:"options,omitempty"`
}

// Section is an ordered group of fields.
type Section struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
}

// Schema is the full sections-of-fields form derived from a Settings record.
// It is rebuilt on every read and never mutated after construction.
type Schema struct {
	Sections []Section `json:"sections"`
}

// Collaborator surfaces, satisfied by internal/secrets and internal/runtime.

// SecretReader reads a stored secret by key.
type SecretReader interface {
	Get(key string) (string, bool)
}

// SecretStore reads and upserts stored secrets.
type SecretStore interface {
	SecretReader
	Set(key, value string) error
}

// Modes answers the runtime-mode queries consulted at schema-build time.
type Modes interface {
	IsContainerized() bool
	IsDevelopment() bool
}

// Environment extends Modes with the privileged root-password side effect.
type Environment interface {
	Modes
	SetRootPassword(password string) error
}
