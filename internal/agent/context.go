package agent

import (
	"sync"

	"github.com/google/uuid"
)

// Config is the per-agent configuration derived from the current settings.
type Config struct {
	ChatModelProvider    string
	ChatModelName        string
	ChatModelTemperature float64
	ChatModelKwargs      map[string]string

	UtilModelProvider    string
	UtilModelName        string
	UtilModelTemperature float64
	UtilModelKwargs      map[string]string

	EmbedModelProvider string
	EmbedModelName     string
	EmbedModelKwargs   map[string]string

	BrowserModelProvider string
	BrowserModelName     string
	BrowserModelVision   bool
	BrowserModelKwargs   map[string]string

	PromptsSubdir   string
	MemorySubdir    string
	KnowledgeSubdir string

	CodeExecSSHAddr  string
	CodeExecSSHPort  int
	CodeExecHTTPPort int
	CodeExecSSHUser  string
}

// Agent is one node in a delegation chain. Each agent optionally delegates
// to a single subordinate, forming a singly-linked chain from the context's
// root agent.
type Agent struct {
	config      Config
	subordinate *Agent
}

// NewAgent creates an agent with the given configuration.
func NewAgent(cfg Config) *Agent {
	return &Agent{config: cfg}
}

// Config returns the agent's current configuration.
func (a *Agent) Config() Config {
	return a.config
}

// SetConfig replaces the agent's configuration.
func (a *Agent) SetConfig(cfg Config) {
	a.config = cfg
}

// Subordinate returns the agent this agent delegates to, or nil.
func (a *Agent) Subordinate() *Agent {
	return a.subordinate
}

// Delegate attaches a subordinate agent, which inherits this agent's
// configuration, and returns it.
func (a *Agent) Delegate() *Agent {
	a.subordinate = NewAgent(a.config)
	return a.subordinate
}

// Context is one live conversation context owning a delegation chain.
type Context struct {
	ID     string
	config Config
	root   *Agent
}

// NewContext creates a context with a fresh root agent.
func NewContext(cfg Config) *Context {
	return &Context{
		ID:     uuid.New().String(),
		config: cfg,
		root:   NewAgent(cfg),
	}
}

// Config returns the context's current configuration.
func (c *Context) Config() Config {
	return c.config
}

// Root returns the head of the delegation chain.
func (c *Context) Root() *Agent {
	return c.root
}

// SetConfig replaces the context configuration and propagates it down the
// delegation chain, head to tail.
func (c *Context) SetConfig(cfg Config) {
	c.config = cfg
	for a := c.root; a != nil; a = a.Subordinate() {
		a.SetConfig(cfg)
	}
}

// Registry tracks all live contexts in the process.
type Registry struct {
	contexts sync.Map
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a context.
func (r *Registry) Add(ctx *Context) {
	r.contexts.Store(ctx.ID, ctx)
}

// Get retrieves a context by ID.
func (r *Registry) Get(id string) (*Context, bool) {
	val, ok := r.contexts.Load(id)
	if !ok {
		return nil, false
	}
	return val.(*Context), true
}

// Remove unregisters a context.
func (r *Registry) Remove(id string) {
	r.contexts.Delete(id)
}

// Range calls fn for every live context until fn returns false.
func (r *Registry) Range(fn func(*Context) bool) {
	r.contexts.Range(func(_, value interface{}) bool {
		return fn(value.(*Context))
	})
}
