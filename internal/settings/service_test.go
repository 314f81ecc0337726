package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mexicanamerican/agent-zero/internal/agent"
	"github.com/mexicanamerican/agent-zero/internal/secrets"
)

func newTestService(t *testing.T) (*Service, fakeSecrets, *agent.Registry) {
	t.Helper()
	sec := fakeSecrets{}
	env := &fakeEnv{containerized: true}
	store := NewStore(filepath.Join(t.TempDir(), "tmp", "settings.json"), sec, env)
	contexts := agent.NewRegistry()
	svc := NewService(store, newTestPresenter(sec, env), contexts, env, nil)
	return svc, sec, contexts
}

func TestGetWithoutFileReturnsDefaults(t *testing.T) {
	svc, _, _ := newTestService(t)

	assert.Equal(t, NormalizeSettings(Default()), svc.Get())
}

func TestGetCachesRecord(t *testing.T) {
	svc, _, _ := newTestService(t)

	first := svc.Get()

	// a file appearing after the first read is not picked up
	require.NoError(t, os.MkdirAll(filepath.Dir(svc.store.path), 0o755))
	require.NoError(t, os.WriteFile(svc.store.path, []byte(`{"chat_model_name":"other"}`), 0o600))
	assert.Equal(t, first, svc.Get())
}

func TestGetFallsBackOnCorruptedFile(t *testing.T) {
	svc, _, _ := newTestService(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(svc.store.path), 0o755))
	require.NoError(t, os.WriteFile(svc.store.path, []byte("{broken"), 0o600))

	assert.Equal(t, NormalizeSettings(Default()), svc.Get())
}

func TestSetPersistsAndCaches(t *testing.T) {
	svc, _, _ := newTestService(t)

	set := Default()
	set.ChatModelName = "gpt-5"
	require.NoError(t, svc.Set(set))

	assert.Equal(t, "gpt-5", svc.Get().ChatModelName)

	data, err := os.ReadFile(svc.store.path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"chat_model_name": "gpt-5"`)
}

func TestSetReconfiguresContexts(t *testing.T) {
	svc, _, contexts := newTestService(t)

	ctx := agent.NewContext(agent.Config{ChatModelName: "old"})
	sub := ctx.Root().Delegate()
	contexts.Add(ctx)

	set := Default()
	set.ChatModelName = "gpt-5"
	require.NoError(t, svc.Set(set))

	assert.Equal(t, "gpt-5", ctx.Config().ChatModelName)
	assert.Equal(t, "gpt-5", sub.Config().ChatModelName)
}

func TestSetSchedulesSTTReload(t *testing.T) {
	svc, _, _ := newTestService(t)
	reloader := newRecordingReloader()
	svc.Reload = reloader

	set := Default()
	set.STTModelSize = "large"
	require.NoError(t, svc.Set(set))
	svc.Wait()

	assert.Equal(t, "large", <-reloader.sizes)
}

func TestSetSchemaPreservesUntouchedSecret(t *testing.T) {
	svc, sec, _ := newTestService(t)

	withPassword := Default()
	withPassword.AuthPassword = "hunter2"
	require.NoError(t, svc.Set(withPassword))
	require.Equal(t, "hunter2", sec[secrets.KeyAuthPassword])

	// a UI round-trip that leaves the masked field at the placeholder
	schema := svc.Schema()
	assert.Equal(t, PasswordPlaceholder, findField(t, schema, "auth_password").Value)
	require.NoError(t, svc.SetSchema(schema))

	assert.Equal(t, "hunter2", sec[secrets.KeyAuthPassword])
}

func TestSetSchemaAppliesSubmittedValues(t *testing.T) {
	svc, sec, _ := newTestService(t)

	schema := svc.Schema()
	for si, section := range schema.Sections {
		for fi, field := range section.Fields {
			switch field.ID {
			case "chat_model_name":
				schema.Sections[si].Fields[fi].Value = "gpt-5"
			case "api_key_openai":
				schema.Sections[si].Fields[fi].Value = "sk-123"
			}
		}
	}
	require.NoError(t, svc.SetSchema(schema))

	assert.Equal(t, "gpt-5", svc.Get().ChatModelName)
	assert.Equal(t, "sk-123", sec["OPENAI"])
	assert.Equal(t, "sk-123", svc.Get().APIKeys["openai"])
}
