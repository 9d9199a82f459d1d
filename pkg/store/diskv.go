package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Load creates a Persistence backed by diskv using the provided
// config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Exists(key Key) bool {
	return p.d.Has(key.String())
}

func (p *persistence) Read(key Key) ([]byte, error) {
	val, err := p.d.Read(key.String())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (p *persistence) Write(key Key, data []byte) error {
	if err := p.d.Write(key.String(), data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Names(ctx context.Context, category string) []string {
	names := make([]string, 0)
	for raw := range p.d.Keys(ctx.Done()) {
		pk := keyToPathTransform(raw)
		if len(pk.Path) == 0 || pk.Path[0] != category {
			continue
		}
		names = append(names, pk.FileName)
	}
	sort.Strings(names)
	return names
}

func (p *persistence) EnsureCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return errors.New("store: category name required")
	}
	if p.basePath == "" {
		return errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(filepath.Join(p.basePath, category), 0o755); err != nil {
		return fmt.Errorf("store: ensure category: %w", err)
	}
	return nil
}

// keyToPathTransform maps "category/name" onto a directory per
// category with one file per document.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s/%s", strings.Join(pathKey.Path, "/"), pathKey.FileName)
}
