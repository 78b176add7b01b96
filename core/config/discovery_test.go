package config

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	gzerror "github.com/bmc/grizzled-go/core/error"
)

func TestListPossibleConfigFiles(t *testing.T) {
	got := ListPossibleConfigFiles(DiscoveryOptions{
		Paths:      []string{"/a", "/b"},
		Filenames:  []string{"app", "tool.ini"},
		Extensions: []string{".ini", ".conf"},
	})
	want := []string{
		"/a/app", "/a/app.ini", "/a/app.conf",
		"/a/tool.ini", "/a/tool.ini.conf",
		"/b/app", "/b/app.ini", "/b/app.conf",
		"/b/tool.ini", "/b/tool.ini.conf",
	}
	for i := range want {
		want[i] = filepath.FromSlash(want[i])
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("ListPossibleConfigFiles() =\n%v\nwant\n%v", got, want)
	}
}

func TestFindConfigFile(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	writeFiles(t, second, map[string]string{
		"app.conf": "[found]\nin = conf\n",
		"app.ini":  "[found]\nin = ini\n",
	})
	writeFiles(t, first, map[string]string{"app/placeholder": ""})

	opts := DiscoveryOptions{
		Paths:      []string{first, second},
		Filenames:  []string{"app"},
		Extensions: []string{".ini", ".cfg", ".conf"},
	}

	path, err := FindConfigFile(opts)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(second, "app.ini") {
		t.Errorf("FindConfigFile() = %q; directories must be skipped and .ini tried first", path)
	}

	cfg, err := Discover(opts, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := cfg.Get("found", "in"); v != "ini" {
		t.Errorf("found.in = %q", v)
	}

	opts.Filenames = []string{"missing"}
	_, err = FindConfigFile(opts)
	if !gzerror.HasCode(err, gzerror.CodeNotFound) {
		t.Fatalf("error = %v, want NOT_FOUND", err)
	}
	if paths, ok := gzerror.GetDetail(err, "searchPaths"); !ok || len(paths.([]string)) != 8 {
		t.Errorf("searchPaths = %v", paths)
	}
}

func TestDefaultDiscoveryOptions(t *testing.T) {
	opts := DefaultDiscoveryOptions("app")
	if opts.Paths[0] != "." {
		t.Errorf("first search path = %q", opts.Paths[0])
	}
	if runtime.GOOS != "windows" && opts.Paths[len(opts.Paths)-1] != "/etc" {
		t.Errorf("last search path = %q", opts.Paths[len(opts.Paths)-1])
	}
	if len(opts.Filenames) != 1 || opts.Filenames[0] != "app" {
		t.Errorf("Filenames = %v", opts.Filenames)
	}
}
