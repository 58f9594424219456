// Package tools is the query façade exposed to external agents: a registry
// of curated, named operations that forward validated parameters to the query
// API and reshape results into success/error envelopes. Nothing in here ever
// raises; every failure becomes an envelope.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// Handler executes one named tool. Parameters arrive as the raw JSON body of
// the invocation; the returned value is always a serializable envelope.
type Handler func(ctx context.Context, params json.RawMessage) any

// Tool describes one registered operation.
type Tool struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	handler     Handler `json:"-"`
}

// Registry holds the named tools in registration order.
type Registry struct {
	tools []Tool
	index map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: map[string]int{}}
}

// Register adds a tool. Duplicate names are a programming error.
func (r *Registry) Register(name, description string, handler Handler) {
	if _, exists := r.index[name]; exists {
		panic(fmt.Sprintf("tool %q registered twice", name))
	}
	r.index[name] = len(r.tools)
	r.tools = append(r.tools, Tool{Name: name, Description: description, handler: handler})
}

// List returns the registered tools in registration order.
func (r *Registry) List() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Invoke runs the named tool. An unknown name reports ok=false; tool-level
// failures still return an envelope with ok=true, because the error channel
// belongs inside the envelope.
func (r *Registry) Invoke(ctx context.Context, name string, params json.RawMessage) (any, bool) {
	pos, exists := r.index[name]
	if !exists {
		return nil, false
	}
	return r.tools[pos].handler(ctx, params), true
}
