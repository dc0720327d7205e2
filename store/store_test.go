package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/fortune"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "ffc"))
}

func TestStore_SaveLoadClear(t *testing.T) {
	s := newTestStore(t)

	var got map[string]int
	if s.Load("counts", &got) {
		t.Fatal("Load() found a value in an empty store")
	}

	s.Save("counts", map[string]int{"a": 1, "b": 2})
	if !s.Load("counts", &got) {
		t.Fatal("Load() found nothing after Save()")
	}
	if got["a"] != 1 || got["b"] != 2 {
		t.Errorf("Load() = %v, want map[a:1 b:2]", got)
	}

	s.Save("counts", map[string]int{"c": 3})
	got = nil
	if !s.Load("counts", &got) || len(got) != 1 || got["c"] != 3 {
		t.Errorf("Load() after overwrite = %v, want map[c:3]", got)
	}

	s.Clear("counts")
	if s.Load("counts", &got) {
		t.Error("Load() found a value after Clear()")
	}
	// clearing twice is fine.
	s.Clear("counts")

	// no temporary file is left behind.
	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("store folder is not empty: %v", entries)
	}
}

func TestStore_MalformedValueIsAbsent(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(s.Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	for name, payload := range map[string]string{
		"truncated": `[{"id":"a","amount":`,
		"empty":     "  \n",
		"null":      "null",
		"wrong":     `{"id":"a"}`,
	} {
		t.Run(name, func(t *testing.T) {
			if err := os.WriteFile(filepath.Join(s.Dir(), KeyOptions+".json"), []byte(payload), 0o644); err != nil {
				t.Fatal(err)
			}
			if opts := s.LoadOptions(); opts != nil {
				t.Errorf("LoadOptions() = %v, want nil", opts)
			}
		})
	}

	// a previous value is left untouched.
	keep := []int{1, 2}
	os.WriteFile(filepath.Join(s.Dir(), "ints.json"), []byte(`[1,"x"]`), 0o644)
	if s.Load("ints", &keep) {
		t.Error("Load() accepted a malformed payload")
	}
	if len(keep) != 2 || keep[0] != 1 {
		t.Errorf("Load() modified the value: %v", keep)
	}
}

func TestStore_UnusableFolder(t *testing.T) {
	// a regular file where the folder should be: every operation degrades.
	file := filepath.Join(t.TempDir(), "not-a-folder")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := Open(file)

	s.SaveOptions(fortune.Options{fortune.NewOption(2025)})
	if opts := s.LoadOptions(); opts != nil {
		t.Errorf("LoadOptions() = %v, want nil", opts)
	}
	s.ClearOptions()
}

func TestStore_InvalidKey(t *testing.T) {
	s := newTestStore(t)
	s.Save("../escape", 1)
	var v int
	if s.Load("../escape", &v) {
		t.Error("Load() accepted an invalid key")
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(s.Dir()), "escape.json")); err == nil {
		t.Error("Save() wrote outside of the store folder")
	}
	if s.Load("counts", v) {
		t.Error("Load() into a non pointer succeeded")
	}
}

func TestStore_Options(t *testing.T) {
	s := newTestStore(t)

	if opts := s.LoadOptions(); opts != nil {
		t.Fatalf("LoadOptions() = %v, want nil", opts)
	}

	o := fortune.NewOption(2020)
	o.Name = "ETF"
	o.InitialAmount = fortune.D(1000)
	o.Amount = fortune.D(100)
	o.Rate = fortune.P(10)
	o.EndYear = 2022
	s.SaveOptions(fortune.Options{o})

	opts := s.LoadOptions()
	if len(opts) != 1 {
		t.Fatalf("LoadOptions() = %v, want 1 option", opts)
	}
	got := opts[0]
	if got.ID != o.ID || got.Name != "ETF" || !got.Rate.Equal(o.Rate) || got.EndYear != 2022 {
		t.Errorf("LoadOptions() = %+v, want %+v", got, o)
	}
	if f := fortune.Project(opts).Fortune(); !f.Equal(fortune.D(1541)) {
		t.Errorf("projected fortune = %v, want 1541", f)
	}

	// an emptied collection is saved as such, and loads as an empty collection.
	s.SaveOptions(nil)
	if opts := s.LoadOptions(); opts == nil || len(opts) != 0 {
		t.Errorf("LoadOptions() = %#v, want an empty collection", opts)
	}

	s.ClearOptions()
	if opts := s.LoadOptions(); opts != nil {
		t.Errorf("LoadOptions() after ClearOptions() = %v, want nil", opts)
	}
}

func TestStore_Profile(t *testing.T) {
	s := newTestStore(t)
	if _, ok := s.LoadProfile(); ok {
		t.Fatal("LoadProfile() found a profile in an empty store")
	}
	s.SaveProfile(fortune.Profile{BirthYear: 1990})
	p, ok := s.LoadProfile()
	if !ok || p.BirthYear != 1990 {
		t.Errorf("LoadProfile() = %v, %v; want 1990, true", p, ok)
	}
}
