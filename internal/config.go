package internal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v2"
)

// A FileSource reads world data files by name.
type FileSource interface {
	ReadFile(name string) (string, error)
}

// DirSource is a FileSource reading files relative to a directory. Files may
// be UTF-8, with or without a byte order mark, or UTF-16 with a byte order
// mark.
type DirSource string

// ReadFile reads and decodes a file.
func (d DirSource) ReadFile(name string) (string, error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(string(d), name)
	}
	b, err := ioutil.ReadFile(name)
	if err != nil {
		return "", err
	}
	return decodeText(name, b)
}

// decodeText converts raw file contents to a string.
func decodeText(name string, b []byte) (string, error) {
	utf16 := bytes.HasPrefix(b, []byte{0xfe, 0xff}) || bytes.HasPrefix(b, []byte{0xff, 0xfe})
	if !utf16 && !utf8.Valid(b) {
		return "", &LoadError{Source: name, Err: ErrNotUTF8}
	}
	r, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), b)
	if err != nil {
		return "", &LoadError{Source: name, Err: err}
	}
	return string(r), nil
}

// LoadFiles reads the named files from fs in order and loads them.
func (g *Game) LoadFiles(fs FileSource, names ...string) error {
	sources := make([]Source, 0, len(names))
	for _, name := range names {
		text, err := fs.ReadFile(name)
		if err != nil {
			return err
		}
		sources = append(sources, Source{Name: name, Text: text})
	}
	return g.Load(sources...)
}

// A Manifest describes a game: its title, the data files to load in order,
// and the settings to play it with.
type Manifest struct {
	Title      string   `yaml:"title"`
	Files      []string `yaml:"files"`
	Separators []string `yaml:"separators"`
	Trace      bool     `yaml:"trace"`
	// Dir is the directory containing the manifest, against which relative
	// file names are resolved.
	Dir string `yaml:"-"`
}

// ErrNoFiles means a manifest lists no data files.
var ErrNoFiles = errors.New("manifest lists no data files")

// ParseManifest decodes a YAML manifest.
func ParseManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("couldn't parse manifest: %w", err)
	}
	if len(m.Files) == 0 {
		return nil, ErrNoFiles
	}
	return &m, nil
}

// LoadManifest reads a YAML manifest from a file.
func LoadManifest(path string) (*Manifest, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseManifest(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Dir = filepath.Dir(path)
	return m, nil
}

// Config returns the game configuration the manifest describes, printing to
// out.
func (m *Manifest) Config(out Output) Config {
	return Config{Out: out, Separators: m.Separators, Trace: m.Trace}
}

// Source returns the FileSource for the manifest's files.
func (m *Manifest) Source() FileSource {
	return DirSource(m.Dir)
}

// Open creates a game as the manifest describes and loads its files.
func (m *Manifest) Open(out Output) (*Game, error) {
	g := NewGame(m.Config(out))
	if err := g.LoadFiles(m.Source(), m.Files...); err != nil {
		return nil, err
	}
	return g, nil
}
