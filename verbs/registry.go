package verbs

import "sort"
import "sync"

import "github.com/pkg/errors"

// ErrUnknownVerb is returned when a name is not registered.
var ErrUnknownVerb = errors.New("unknown verb")

// Registry maps verb names to verbs.
type Registry struct {
	mut   sync.RWMutex
	verbs map[string]Verb
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{verbs: make(map[string]Verb)}
}

// Builtin returns a registry holding know, be_certain, wonder and wondows.
func Builtin() *Registry {
	r := NewRegistry()
	r.MustRegister(NewVerb("know", Know))
	r.MustRegister(NewVerb("be_certain", BeCertain))
	r.MustRegister(NewVerb("wonder", Wonder))
	r.MustRegister(NewVerb("wondows", Wondows))
	return r
}

// Register adds v under v.Name(). Names must be unique and non-empty.
func (r *Registry) Register(v Verb) error {
	if v.Name() == "" {
		return errors.New("verb with empty name")
	}
	r.mut.Lock()
	defer r.mut.Unlock()
	if _, ok := r.verbs[v.Name()]; ok {
		return errors.Errorf("verb %q already registered", v.Name())
	}
	r.verbs[v.Name()] = v
	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(v Verb) {
	if err := r.Register(v); err != nil {
		panic(err.Error())
	}
}

// Lookup finds the verb called name.
func (r *Registry) Lookup(name string) (Verb, error) {
	r.mut.RLock()
	defer r.mut.RUnlock()
	v, ok := r.verbs[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownVerb, "%q", name)
	}
	return v, nil
}

// Resolve looks up every name, in order.
func (r *Registry) Resolve(names []string) ([]Verb, error) {
	o := make([]Verb, 0, len(names))
	for _, name := range names {
		v, err := r.Lookup(name)
		if err != nil {
			return nil, err
		}
		o = append(o, v)
	}
	return o, nil
}

// Names lists the registered names, sorted.
func (r *Registry) Names() []string {
	r.mut.RLock()
	defer r.mut.RUnlock()
	o := make([]string, 0, len(r.verbs))
	for name := range r.verbs {
		o = append(o, name)
	}
	sort.Strings(o)
	return o
}
