// Package namegen fills a name field from a title field on demand.
package namegen

import (
	"net/url"
	"sync"

	"cms-admin/pkg/slug"
)

// Field is a single text input the host UI exposes.
type Field interface {
	Value() string
	SetValue(value string)
}

// Trigger invokes a callback whenever the user activates it. The returned
// function detaches the callback.
type Trigger interface {
	OnActivate(fn func()) (detach func())
}

// Handle is returned by Attach and owns the trigger registration.
type Handle struct {
	source    Field
	dest      Field
	generator *slug.Generator

	mu     sync.Mutex
	detach func()
}

// Attach wires source, dest and trigger together. A nil generator uses the
// default fold mode. A nil trigger is allowed; Generate can then be called
// directly.
func Attach(source, dest Field, trigger Trigger, generator *slug.Generator) *Handle {
	if generator == nil {
		generator = slug.NewGenerator(slug.ModeFold)
	}

	h := &Handle{
		source:    source,
		dest:      dest,
		generator: generator,
	}

	if trigger != nil {
		h.detach = trigger.OnActivate(func() {
			h.Generate()
		})
	}

	return h
}

// Generate performs one activation. It reports whether dest was written;
// an empty source leaves dest untouched.
func (h *Handle) Generate() bool {
	if h == nil || h.source == nil || h.dest == nil {
		return false
	}

	title := h.source.Value()
	if title == "" {
		return false
	}

	h.dest.SetValue(h.generator.Generate(title))
	return true
}

// Close detaches the trigger. It is safe to call more than once.
func (h *Handle) Close() error {
	if h == nil {
		return nil
	}

	h.mu.Lock()
	detach := h.detach
	h.detach = nil
	h.mu.Unlock()

	if detach != nil {
		detach()
	}
	return nil
}

// FormValue exposes one key of submitted form values as a Field.
type FormValue struct {
	values url.Values
	key    string
}

func FormField(values url.Values, key string) *FormValue {
	return &FormValue{values: values, key: key}
}

func (v *FormValue) Value() string {
	return v.values.Get(v.key)
}

func (v *FormValue) SetValue(value string) {
	v.values.Set(v.key, value)
}

// Button is an in-process Trigger. Press runs every attached callback in
// registration order.
type Button struct {
	mu        sync.Mutex
	next      int
	callbacks map[int]func()
	order     []int
}

func NewButton() *Button {
	return &Button{callbacks: make(map[int]func())}
}

func (b *Button) OnActivate(fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.callbacks[id] = fn
	b.order = append(b.order, id)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.callbacks, id)
	}
}

func (b *Button) Press() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.callbacks))
	live := b.order[:0]
	for _, id := range b.order {
		if fn, ok := b.callbacks[id]; ok {
			fns = append(fns, fn)
			live = append(live, id)
		}
	}
	b.order = live
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
