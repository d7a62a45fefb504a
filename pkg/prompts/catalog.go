// Package prompts stores versioned system prompts per agent on disk, with
// embedded defaults materialized on first use.
package prompts

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Agent identifiers. nexus_ai plans and segregates stages; ai_dude
// generates Structured Text.
const (
	AgentPlanner = "nexus_ai"
	AgentCodegen = "ai_dude"

	// CurrentVersion is the alias resolved when no version is requested.
	CurrentVersion = "current"
)

//go:embed defaults
var defaultsFS embed.FS

// ErrPromptNotFound is returned when no prompt exists for the requested
// agent/version pair.
var ErrPromptNotFound = errors.New("prompt not found")

// Agents lists the known agent identifiers.
func Agents() []string {
	return []string{AgentPlanner, AgentCodegen}
}

func validAgent(agent string) bool {
	for _, a := range Agents() {
		if a == agent {
			return true
		}
	}
	return false
}

// Catalog reads and writes prompt files under <dir>/<agent>/<version>.txt.
type Catalog struct {
	dir string
	mu  sync.RWMutex
}

// NewCatalog creates a catalog rooted at dir.
func NewCatalog(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Load returns the prompt text for agent at the given version. An empty
// version resolves to "current". When no file exists for "current", the
// embedded default is materialized to disk and returned.
func (c *Catalog) Load(agent, version string) (string, error) {
	if !validAgent(agent) {
		return "", fmt.Errorf("%w: unknown agent %q", ErrPromptNotFound, agent)
	}
	if version == "" {
		version = CurrentVersion
	}

	c.mu.RLock()
	data, err := os.ReadFile(c.promptPath(agent, version))
	c.mu.RUnlock()
	if err == nil {
		return string(data), nil
	}

	if version != CurrentVersion {
		return "", fmt.Errorf("%w: agent %q version %q", ErrPromptNotFound, agent, version)
	}

	embedded, err := defaultsFS.ReadFile(filepath.Join("defaults", agent, "current.txt"))
	if err != nil {
		return "", fmt.Errorf("%w: agent %q has no default", ErrPromptNotFound, agent)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.write(agent, CurrentVersion, string(embedded)); err != nil {
		return "", err
	}
	return string(embedded), nil
}

// Save stores content as a new timestamped version and points "current" at
// it. Returns the new version identifier.
func (c *Catalog) Save(agent, content string) (string, error) {
	if !validAgent(agent) {
		return "", fmt.Errorf("%w: unknown agent %q", ErrPromptNotFound, agent)
	}
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("prompt content must not be empty")
	}

	version := time.Now().UTC().Format("v20060102T150405")

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.write(agent, version, content); err != nil {
		return "", err
	}
	if err := c.write(agent, CurrentVersion, content); err != nil {
		return "", err
	}
	return version, nil
}

// List returns the stored version identifiers for agent, sorted ascending.
// The "current" alias is not included.
func (c *Catalog) List(agent string) ([]string, error) {
	if !validAgent(agent) {
		return nil, fmt.Errorf("%w: unknown agent %q", ErrPromptNotFound, agent)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entries, err := os.ReadDir(filepath.Join(c.dir, agent))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list prompts for %s: %w", agent, err)
	}

	var versions []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".txt") {
			continue
		}
		version := strings.TrimSuffix(name, ".txt")
		if version == CurrentVersion {
			continue
		}
		versions = append(versions, version)
	}
	sort.Strings(versions)
	return versions, nil
}

func (c *Catalog) promptPath(agent, version string) string {
	return filepath.Join(c.dir, agent, version+".txt")
}

func (c *Catalog) write(agent, version, content string) error {
	dir := filepath.Join(c.dir, agent)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create prompt dir: %w", err)
	}
	path := c.promptPath(agent, version)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write prompt %s: %w", path, err)
	}
	return nil
}
