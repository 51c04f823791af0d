// Package i18n resolves translation keys to localized text.
//
// A Resolver is built once from message catalogs and handed to the views that
// need it. Lookup order for every key: the active language, then the default
// language ("en"), then the key itself.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultLanguage is the fallback language for every lookup.
const DefaultLanguage = "en"

// catalogPattern matches catalog file names inside a catalog filesystem.
const catalogPattern = "active.*.toml"

// ErrDefaultLanguageMissing is returned when no catalog exists for DefaultLanguage.
var ErrDefaultLanguageMissing = errors.New("i18n: default language has no catalog")

//go:embed locales/active.*.toml
var localeFS embed.FS

// Table maps language code to key to text.
type Table map[string]map[string]string

// LanguageOption is one entry of a language switcher.
type LanguageOption struct {
	Code   string
	Label  string // native name, e.g. "Español"
	Active bool
}

// Resolver holds the loaded catalogs and the active language.
type Resolver struct {
	bundle    *goi18n.Bundle
	texts     map[string]map[string]string // language -> key -> stored text
	supported []language.Tag
	logger    hclog.Logger

	mu     sync.RWMutex
	active language.Tag
}

type settings struct {
	logger   hclog.Logger
	language string
	extra    []fs.FS
}

// Option configures resolver construction.
type Option func(*settings)

// WithLogger sets the logger used for load and lookup diagnostics.
func WithLogger(l hclog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithLanguage sets the initial language. Unsupported codes are ignored.
func WithLanguage(code string) Option {
	return func(s *settings) { s.language = code }
}

// WithExtraCatalogs loads active.*.toml files from fsys after the primary
// catalogs. Keys found there override earlier ones.
func WithExtraCatalogs(fsys fs.FS) Option {
	return func(s *settings) { s.extra = append(s.extra, fsys) }
}

func newSettings(opts []Option) settings {
	s := settings{logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func newBundle() *goi18n.Bundle {
	b := goi18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return b
}

// LoadEmbedded builds a resolver from the catalogs compiled into the binary.
func LoadEmbedded(opts ...Option) (*Resolver, error) {
	sub, err := fs.Sub(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("i18n: open embedded locales: %w", err)
	}
	return LoadFS(sub, opts...)
}

// LoadFS builds a resolver from every active.<lang>.toml at the root of fsys.
func LoadFS(fsys fs.FS, opts ...Option) (*Resolver, error) {
	s := newSettings(opts)
	c := newCatalogs()

	for _, src := range append([]fs.FS{fsys}, s.extra...) {
		if err := c.loadFS(src, s.logger); err != nil {
			return nil, err
		}
	}
	return build(c, s)
}

// catalogs collects messages into the go-i18n bundle, which renders
// templates, and keeps the stored text per language for plain lookups.
type catalogs struct {
	bundle *goi18n.Bundle
	tags   map[string]language.Tag
	texts  map[string]map[string]string
}

func newCatalogs() *catalogs {
	return &catalogs{
		bundle: newBundle(),
		tags:   map[string]language.Tag{},
		texts:  map[string]map[string]string{},
	}
}

func (c *catalogs) record(tag language.Tag, msgs []*goi18n.Message) {
	code := tag.String()
	c.tags[code] = tag
	if c.texts[code] == nil {
		c.texts[code] = make(map[string]string, len(msgs))
	}
	for _, m := range msgs {
		c.texts[code][m.ID] = m.Other
	}
}

func (c *catalogs) loadFS(fsys fs.FS, logger hclog.Logger) error {
	paths, err := fs.Glob(fsys, catalogPattern)
	if err != nil {
		return fmt.Errorf("i18n: glob catalogs: %w", err)
	}
	sort.Strings(paths)
	for _, p := range paths {
		mf, err := c.bundle.LoadMessageFileFS(fsys, p)
		if err != nil {
			return fmt.Errorf("i18n: load %s: %w", p, err)
		}
		c.record(mf.Tag, mf.Messages)
		logger.Debug("catalog loaded", "file", p, "language", mf.Tag.String(), "messages", len(mf.Messages))
	}
	return nil
}

// FromTable builds a resolver from an in-memory table.
func FromTable(t Table, opts ...Option) (*Resolver, error) {
	s := newSettings(opts)
	c := newCatalogs()

	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			return nil, fmt.Errorf("i18n: table language %q: %w", code, err)
		}
		msgs := make([]*goi18n.Message, 0, len(t[code]))
		for key, text := range t[code] {
			msgs = append(msgs, &goi18n.Message{ID: key, Other: text})
		}
		if err := c.bundle.AddMessages(tag, msgs...); err != nil {
			return nil, fmt.Errorf("i18n: table language %q: %w", code, err)
		}
		c.record(tag, msgs)
	}
	for _, fsys := range s.extra {
		if err := c.loadFS(fsys, s.logger); err != nil {
			return nil, err
		}
	}
	return build(c, s)
}

func build(c *catalogs, s settings) (*Resolver, error) {
	def, ok := c.tags[DefaultLanguage]
	if !ok {
		return nil, ErrDefaultLanguageMissing
	}
	supported := make([]language.Tag, 0, len(c.tags))
	for _, tag := range c.tags {
		supported = append(supported, tag)
	}
	sort.Slice(supported, func(i, j int) bool {
		return supported[i].String() < supported[j].String()
	})

	r := &Resolver{
		bundle:    c.bundle,
		texts:     c.texts,
		supported: supported,
		logger:    s.logger,
		active:    def,
	}
	if s.language != "" && !r.SetLanguage(s.language) {
		r.logger.Warn("unsupported initial language, keeping default", "language", s.language, "default", DefaultLanguage)
	}
	return r, nil
}

// SetLanguage makes code the active language. Unsupported or malformed codes
// leave the resolver unchanged and return false.
func (r *Resolver) SetLanguage(code string) bool {
	tag, ok := r.lookupSupported(code)
	if !ok {
		return false
	}
	r.mu.Lock()
	r.active = tag
	r.mu.Unlock()
	return true
}

func (r *Resolver) lookupSupported(code string) (language.Tag, bool) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return language.Und, false
	}
	for _, s := range r.supported {
		if s.String() == tag.String() {
			return s, true
		}
	}
	return language.Und, false
}

// Supports reports whether code is one of the loaded languages.
func (r *Resolver) Supports(code string) bool {
	_, ok := r.lookupSupported(code)
	return ok
}

// Language returns the active language code.
func (r *Resolver) Language() string {
	return r.Tag().String()
}

// Tag returns the active language tag.
func (r *Resolver) Tag() language.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Translate returns the stored text for key, looked up in the active
// language, then DefaultLanguage, then returned verbatim. The text is not
// treated as a template.
func (r *Resolver) Translate(key string) string {
	if key == "" {
		return ""
	}
	for _, code := range r.lookupOrder() {
		if text, ok := r.texts[code][key]; ok {
			return text
		}
	}
	r.logger.Debug("translation missing", "key", key, "language", r.Language())
	return key
}

// TranslateData renders key's text as a template with data ({{.Field}}
// placeholders). Text that fails to render in the active language falls
// through to DefaultLanguage, then to the stored text, then to key.
func (r *Resolver) TranslateData(key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	if data == nil {
		return r.Translate(key)
	}
	for _, code := range r.lookupOrder() {
		if _, ok := r.texts[code][key]; !ok {
			continue
		}
		localizer := goi18n.NewLocalizer(r.bundle, code)
		msg, err := localizer.Localize(&goi18n.LocalizeConfig{
			MessageID:    key,
			TemplateData: data,
		})
		if err == nil {
			return msg
		}
		r.logger.Debug("translation failed to render", "key", key, "language", code, "error", err)
	}
	return r.Translate(key)
}

// lookupOrder is the active language followed by DefaultLanguage.
func (r *Resolver) lookupOrder() []string {
	active := r.Language()
	if active == DefaultLanguage {
		return []string{active}
	}
	return []string{active, DefaultLanguage}
}

// Languages lists the supported languages with their native names.
func (r *Resolver) Languages() []LanguageOption {
	active := r.Language()
	out := make([]LanguageOption, 0, len(r.supported))
	for _, tag := range r.supported {
		name := display.Self.Name(tag)
		if name == "" {
			name = tag.String()
		}
		out = append(out, LanguageOption{
			Code:   tag.String(),
			Label:  cases.Title(tag).String(name),
			Active: tag.String() == active,
		})
	}
	return out
}
