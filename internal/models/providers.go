package models

import "strings"

// NoKey is the sentinel returned when no API key is known for a provider.
const NoKey = "None"

// Provider identifies a model provider by internal name and display label.
type Provider struct {
	Name  string
	Label string
}

// Providers lists every supported model provider in display order.
var Providers = []Provider{
	{Name: "ANTHROPIC", Label: "Anthropic"},
	{Name: "DEEPSEEK", Label: "DeepSeek"},
	{Name: "GOOGLE", Label: "Google"},
	{Name: "GROQ", Label: "Groq"},
	{Name: "HUGGINGFACE", Label: "HuggingFace"},
	{Name: "LMSTUDIO", Label: "LM Studio"},
	{Name: "MISTRALAI", Label: "Mistral AI"},
	{Name: "OLLAMA", Label: "Ollama"},
	{Name: "OPENAI", Label: "OpenAI"},
	{Name: "OPENAI_AZURE", Label: "OpenAI Azure"},
	{Name: "OPENROUTER", Label: "OpenRouter"},
	{Name: "SAMBANOVA", Label: "Sambanova"},
	{Name: "OTHER", Label: "Other"},
}

// KeyReader reads a stored secret by key.
type KeyReader interface {
	Get(key string) (string, bool)
}

// KnownAPIKey returns the API key already stored for a provider, checking
// the <PROVIDER>, API_KEY_<PROVIDER> and <PROVIDER>_API_KEY conventions.
// Returns NoKey when none is set.
func KnownAPIKey(store KeyReader, provider string) string {
	upper := strings.ToUpper(provider)
	for _, key := range []string{upper, "API_KEY_" + upper, upper + "_API_KEY"} {
		if val, ok := store.Get(key); ok && val != "" {
			return val
		}
	}
	return NoKey
}
