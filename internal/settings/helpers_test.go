package settings

import "context"

// fakeSecrets is an in-memory secret store.
type fakeSecrets map[string]string

func (f fakeSecrets) Get(key string) (string, bool) {
	val, ok := f[key]
	return val, ok
}

func (f fakeSecrets) Set(key, value string) error {
	f[key] = value
	return nil
}

// fakeEnv is a fixed runtime environment.
type fakeEnv struct {
	containerized bool
	development   bool
	rootPassword  string
}

func (e *fakeEnv) IsContainerized() bool { return e.containerized }
func (e *fakeEnv) IsDevelopment() bool   { return e.development }

func (e *fakeEnv) SetRootPassword(password string) error {
	e.rootPassword = password
	return nil
}

// fixedSubdirs returns a Subdirs func serving canned listings.
func fixedSubdirs(byCategory map[string][]string) func(string, ...string) []string {
	return func(category string, exclude ...string) []string {
		skip := make(map[string]bool, len(exclude))
		for _, name := range exclude {
			skip[name] = true
		}
		var out []string
		for _, name := range byCategory[category] {
			if !skip[name] {
				out = append(out, name)
			}
		}
		return out
	}
}

// recordingReloader captures STT preload requests.
type recordingReloader struct {
	sizes chan string
}

func newRecordingReloader() *recordingReloader {
	return &recordingReloader{sizes: make(chan string, 8)}
}

func (r *recordingReloader) Preload(ctx context.Context, modelSize string) error {
	r.sizes <- modelSize
	return nil
}
