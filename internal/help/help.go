// Package help renders the markdown help topics shown in the admin popup.
package help

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"cms-admin/pkg/cache"
	"cms-admin/pkg/logger"
	"cms-admin/pkg/validator"
)

//go:embed topics/*.md
var embeddedTopics embed.FS

var ErrTopicNotFound = errors.New("help topic not found")

type Topic struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

type Library struct {
	files    fs.FS
	markdown goldmark.Markdown
	cache    *cache.Cache

	mu       sync.RWMutex
	rendered map[string]string
}

// NewLibrary serves the embedded topics. cache may be nil.
func NewLibrary(cacheService *cache.Cache) *Library {
	sub, err := fs.Sub(embeddedTopics, "topics")
	if err != nil {
		panic(fmt.Sprintf("help: embedded topics missing: %v", err))
	}
	return NewLibraryFS(sub, cacheService)
}

// NewLibraryFS serves *.md files from the root of files.
func NewLibraryFS(files fs.FS, cacheService *cache.Cache) *Library {
	return &Library{
		files:    files,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		cache:    cacheService,
		rendered: make(map[string]string),
	}
}

// Topics lists available topics sorted by name.
func (l *Library) Topics() ([]Topic, error) {
	entries, err := fs.ReadDir(l.files, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to list help topics: %w", err)
	}

	topics := make([]Topic, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".md")
		source, err := fs.ReadFile(l.files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read help topic %s: %w", name, err)
		}
		topics = append(topics, Topic{Name: name, Title: extractTitle(source, name)})
	}

	sort.Slice(topics, func(i, j int) bool { return topics[i].Name < topics[j].Name })
	return topics, nil
}

// Render returns sanitized HTML for topic.
func (l *Library) Render(ctx context.Context, topic string) (string, error) {
	if !validTopicName(topic) {
		return "", fmt.Errorf("%w: %s", ErrTopicNotFound, topic)
	}

	l.mu.RLock()
	html, ok := l.rendered[topic]
	l.mu.RUnlock()
	if ok {
		return html, nil
	}

	if l.cache.Enabled() {
		if cached, err := l.cache.GetCachedHelpTopic(ctx, topic); err == nil {
			l.remember(topic, cached)
			return cached, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			logger.FromContext(ctx).WithError(err).WithField("topic", topic).Warn("Failed to read help topic from cache")
		}
	}

	source, err := fs.ReadFile(l.files, topic+".md")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTopicNotFound, topic)
		}
		return "", fmt.Errorf("failed to read help topic %s: %w", topic, err)
	}

	var buf bytes.Buffer
	if err := l.markdown.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("failed to render help topic %s: %w", topic, err)
	}

	html = validator.SanitizeHTML(buf.String())
	l.remember(topic, html)

	if err := l.cache.CacheHelpTopic(ctx, topic, html); err != nil {
		logger.FromContext(ctx).WithError(err).WithField("topic", topic).Warn("Failed to cache help topic")
	}

	return html, nil
}

// Reset drops rendered topics from memory and from the shared cache.
func (l *Library) Reset(ctx context.Context) error {
	l.mu.Lock()
	l.rendered = make(map[string]string)
	l.mu.Unlock()
	return l.cache.InvalidateHelpTopics(ctx)
}

func (l *Library) remember(topic, html string) {
	l.mu.Lock()
	l.rendered[topic] = html
	l.mu.Unlock()
}

func validTopicName(topic string) bool {
	if topic == "" {
		return false
	}
	for _, ch := range topic {
		switch {
		case 'a' <= ch && ch <= 'z', '0' <= ch && ch <= '9', ch == '_', ch == '-':
		default:
			return false
		}
	}
	return true
}

func extractTitle(source []byte, fallback string) string {
	for _, line := range strings.Split(string(source), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return fallback
}
