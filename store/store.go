// Package store persists small values on the local disk, one file per key.
//
// It plays the role a browser local storage plays for a web page: values are
// saved on a best-effort basis and every failure (unusable folder, full disk,
// corrupted file) degrades to "no saved data". Failures are logged, never
// returned.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"regexp"

	"github.com/etnz/fortune"
	"github.com/goccy/go-json"
)

const (
	// KeyOptions holds the investment options.
	KeyOptions = "future_fortune_invest_options"
	// KeyProfile holds the user profile.
	KeyProfile = "future_fortune_user_info"
)

// validKey restricts keys to names that are safe as file names.
var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Store is a folder of JSON files, one per key.
type Store struct {
	dir string
	log *slog.Logger
}

// Open returns the store in 'dir'. It never fails: the folder is created on the
// first save, and an unusable folder only makes every operation degrade.
func Open(dir string) *Store {
	return &Store{dir: dir, log: slog.Default().With("store", dir)}
}

// Dir returns the store folder.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(key string) (string, bool) {
	if !validKey.MatchString(key) {
		s.log.Warn("invalid storage key", "key", key)
		return "", false
	}
	return filepath.Join(s.dir, key+".json"), true
}

// Save stores 'v' under 'key', replacing any previous value.
func (s *Store) Save(key string, v any) {
	path, ok := s.path(key)
	if !ok {
		return
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.log.Warn("cannot encode value", "key", key, "err", err)
		return
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Warn("cannot create storage folder", "key", key, "err", err)
		return
	}

	// write in a temp file first so that a failure never leaves a truncated value.
	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		s.log.Warn("cannot save value", "key", key, "err", err)
		return
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		s.log.Warn("cannot save value", "key", key, "err", err)
		return
	}
	if err := tmp.Close(); err != nil {
		s.log.Warn("cannot save value", "key", key, "err", err)
		return
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		s.log.Warn("cannot save value", "key", key, "err", err)
		return
	}
	s.log.Debug("value saved", "key", key, "bytes", len(data))
}

// Load decodes the value stored under 'key' into 'v'. It returns false if
// there is no such value, or if it cannot be read: 'v' is then left untouched.
func (s *Store) Load(key string, v any) bool {
	path, ok := s.path(key)
	if !ok {
		return false
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	if err != nil {
		s.log.Warn("cannot read value", "key", key, "err", err)
		return false
	}
	if len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return false
	}
	ptr := reflect.ValueOf(v)
	if ptr.Kind() != reflect.Pointer || ptr.IsNil() {
		s.log.Warn("cannot load value into a non pointer", "key", key, "type", fmt.Sprintf("%T", v))
		return false
	}
	// decode aside, so that a malformed payload does not leave 'v' half written.
	val := reflect.New(ptr.Elem().Type())
	if err := json.Unmarshal(data, val.Interface()); err != nil {
		s.log.Warn("malformed stored value, ignoring it", "key", key, "err", err)
		return false
	}
	ptr.Elem().Set(val.Elem())
	return true
}

// Clear removes the value stored under 'key'.
func (s *Store) Clear(key string) {
	path, ok := s.path(key)
	if !ok {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Warn("cannot clear value", "key", key, "err", err)
	}
}

// LoadOptions returns the saved investment options, or nil if there are none.
func (s *Store) LoadOptions() fortune.Options {
	var opts fortune.Options
	if !s.Load(KeyOptions, &opts) {
		return nil
	}
	return opts
}

// SaveOptions saves the investment options.
func (s *Store) SaveOptions(opts fortune.Options) {
	if opts == nil {
		opts = fortune.Options{}
	}
	s.Save(KeyOptions, opts)
}

// ClearOptions removes the saved investment options.
func (s *Store) ClearOptions() { s.Clear(KeyOptions) }

// LoadProfile returns the saved user profile.
func (s *Store) LoadProfile() (fortune.Profile, bool) {
	var p fortune.Profile
	ok := s.Load(KeyProfile, &p)
	return p, ok
}

// SaveProfile saves the user profile.
func (s *Store) SaveProfile(p fortune.Profile) { s.Save(KeyProfile, p) }
