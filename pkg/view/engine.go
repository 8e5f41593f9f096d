package view

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"path"
	"reflect"
	"sync"
	texttemplate "text/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dmitrymomot/datefilter/pkg/logger"
)

// Engine renders html/template views and markdown pages from an fs.FS.
//
// Engine is the host of the date filter: it implements both registration
// hooks, RegisterFilter for template functions and RegisterInstanceMethod for
// methods reachable through Instance.Call. Registering invalidates the parsed
// template caches, since template functions are bound at parse time.
type Engine struct {
	fs     fs.FS
	md     goldmark.Markdown
	policy *bluemonday.Policy
	logger *slog.Logger

	filters map[string]any
	methods map[string]reflect.Value

	// Caches hold parsed structure, never rendered output.
	viewCache   map[string]*template.Template
	pageCache   map[string]*cachedPage
	layoutCache map[string]*template.Template

	viewDir   string
	pageDir   string
	layoutDir string

	mu sync.RWMutex
}

// cachedPage holds a parsed markdown page for reuse.
type cachedPage struct {
	metadata map[string]any
	tmpl     *texttemplate.Template
}

// Option configures the Engine.
type Option func(*Engine)

// WithViewDir sets the directory of html/template views. Default: "views".
func WithViewDir(dir string) Option {
	return func(e *Engine) {
		if dir != "" {
			e.viewDir = dir
		}
	}
}

// WithPageDir sets the directory of markdown pages. Default: "pages".
func WithPageDir(dir string) Option {
	return func(e *Engine) {
		if dir != "" {
			e.pageDir = dir
		}
	}
}

// WithLayoutDir sets the directory of page layouts. Default: "layouts".
func WithLayoutDir(dir string) Option {
	return func(e *Engine) {
		if dir != "" {
			e.layoutDir = dir
		}
	}
}

// WithPolicy sets the sanitization policy applied to rendered markdown.
// Default: bluemonday.UGCPolicy().
func WithPolicy(p *bluemonday.Policy) Option {
	return func(e *Engine) {
		if p != nil {
			e.policy = p
		}
	}
}

// WithMarkdown replaces the markdown converter.
func WithMarkdown(md goldmark.Markdown) Option {
	return func(e *Engine) {
		if md != nil {
			e.md = md
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Engine reading templates from fsys.
func New(fsys fs.FS, opts ...Option) *Engine {
	e := &Engine{
		fs:          fsys,
		viewDir:     "views",
		pageDir:     "pages",
		layoutDir:   "layouts",
		filters:     make(map[string]any),
		methods:     make(map[string]reflect.Value),
		viewCache:   make(map[string]*template.Template),
		pageCache:   make(map[string]*cachedPage),
		layoutCache: make(map[string]*template.Template),
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.md == nil {
		e.md = goldmark.New(goldmark.WithExtensions(extension.GFM))
	}
	if e.policy == nil {
		e.policy = bluemonday.UGCPolicy()
	}
	if e.logger == nil {
		e.logger = logger.NewNope()
	}
	return e
}

// RegisterFilter adds a template function available in views, pages and layouts.
// fn must be a function returning one value, or a value and an error.
func (e *Engine) RegisterFilter(name string, fn any) error {
	v, err := checkFunc(name, fn)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.filters[name] = v.Interface()
	e.resetCaches()
	e.logger.Debug("filter registered", slog.String("name", name))
	return nil
}

// RegisterInstanceMethod adds a method callable on every rendered Instance:
//
//	{{ .Call "$date" .Data.CreatedAt "DD MMMM" }}
func (e *Engine) RegisterInstanceMethod(name string, fn any) error {
	v, err := checkFunc(name, fn)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// Copy on write: rendering instances keep the snapshot they started with.
	methods := maps.Clone(e.methods)
	methods[name] = v
	e.methods = methods
	e.logger.Debug("instance method registered", slog.String("name", name))
	return nil
}

// Filters returns a copy of the registered template functions.
func (e *Engine) Filters() map[string]any {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return maps.Clone(e.filters)
}

// Render executes the view name with data wrapped in an Instance.
func (e *Engine) Render(ctx context.Context, w io.Writer, name string, data any) error {
	tmpl, err := e.getView(name)
	if err != nil {
		return err
	}

	// Buffer to avoid writing partial output on execution errors.
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, e.instance(ctx, data)); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	_, err = buf.WriteTo(w)
	return err
}

func (e *Engine) instance(ctx context.Context, data any) *Instance {
	e.mu.RLock()
	methods := e.methods
	e.mu.RUnlock()

	return &Instance{Data: data, ctx: ctx, methods: methods}
}

func (e *Engine) funcs() map[string]any {
	return maps.Clone(e.filters)
}

// resetCaches drops parsed templates. Callers must hold the write lock.
func (e *Engine) resetCaches() {
	clear(e.viewCache)
	clear(e.pageCache)
	clear(e.layoutCache)
}

// getView returns a cached view template or parses and caches it.
func (e *Engine) getView(name string) (*template.Template, error) {
	e.mu.RLock()
	if cached, ok := e.viewCache[name]; ok {
		e.mu.RUnlock()
		return cached, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	// Double-check after acquiring write lock
	if cached, ok := e.viewCache[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(e.fs, path.Join(e.viewDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	tmpl, err := template.New(name).Funcs(e.funcs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrRenderFailed, name, err)
	}

	e.viewCache[name] = tmpl
	return tmpl, nil
}

// getLayout returns a cached layout template or parses and caches it.
func (e *Engine) getLayout(name string) (*template.Template, error) {
	e.mu.RLock()
	if cached, ok := e.layoutCache[name]; ok {
		e.mu.RUnlock()
		return cached, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	if cached, ok := e.layoutCache[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(e.fs, path.Join(e.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	tmpl, err := template.New(name).Funcs(e.funcs()).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing layout %s: %v", ErrRenderFailed, name, err)
	}

	e.layoutCache[name] = tmpl
	return tmpl, nil
}

// checkFunc validates a template function the way text/template does:
// one result, or two results with an error last.
func checkFunc(name string, fn any) (reflect.Value, error) {
	if name == "" {
		return reflect.Value{}, fmt.Errorf("%w: empty name", ErrInvalidFunc)
	}

	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: %s is %T, not a function", ErrInvalidFunc, name, fn)
	}

	t := v.Type()
	switch {
	case t.NumOut() == 1:
	case t.NumOut() == 2 && t.Out(1) == errorType:
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s must return a value, or a value and an error", ErrInvalidFunc, name)
	}
	return v, nil
}

var errorType = reflect.TypeFor[error]()
