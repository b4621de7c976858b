package paths

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakePlatform is a Platform with fixed answers.
type fakePlatform struct {
	goos    string
	env     map[string]string
	home    string
	homeErr error
}

func (m *fakePlatform) OS() string {
	return m.goos
}

func (m *fakePlatform) Getenv(key string) string {
	if m.env == nil {
		return ""
	}
	return m.env[key]
}

func (m *fakePlatform) UserHomeDir() (string, error) {
	if m.homeErr != nil {
		return "", m.homeErr
	}
	return m.home, nil
}

func TestConfigDirAllPlatforms(t *testing.T) {
	tests := []struct {
		name     string
		platform *fakePlatform
		want     string
	}{
		// Windows tests
		{
			name: "Windows with APPDATA",
			platform: &fakePlatform{
				goos: "windows",
				env:  map[string]string{"APPDATA": `C:\Users\Test\AppData\Roaming`},
			},
			want: filepath.Join(`C:\Users\Test\AppData\Roaming`, "tablo"),
		},
		{
			name: "Windows without APPDATA",
			platform: &fakePlatform{
				goos: "windows",
				env:  map[string]string{},
			},
			want: "",
		},
		// macOS tests
		{
			name: "macOS happy path",
			platform: &fakePlatform{
				goos: "darwin",
				home: "/Users/test",
			},
			want: filepath.Join("/Users/test", "Library", "Application Support", "tablo"),
		},
		{
			name: "macOS UserHomeDir error",
			platform: &fakePlatform{
				goos:    "darwin",
				homeErr: errors.New("no home directory"),
			},
			want: "",
		},
		// Linux tests
		{
			name: "Linux happy path",
			platform: &fakePlatform{
				goos: "linux",
				home: "/home/test",
			},
			want: filepath.Join("/home/test", ".config", "tablo"),
		},
		{
			name: "Linux XDG_CONFIG_HOME",
			platform: &fakePlatform{
				goos: "linux",
				env:  map[string]string{"XDG_CONFIG_HOME": "/xdg"},
				home: "/home/test",
			},
			want: filepath.Join("/xdg", "tablo"),
		},
		{
			name: "Linux relative XDG_CONFIG_HOME is ignored",
			platform: &fakePlatform{
				goos: "linux",
				env:  map[string]string{"XDG_CONFIG_HOME": "relative"},
				home: "/home/test",
			},
			want: filepath.Join("/home/test", ".config", "tablo"),
		},
		{
			name: "Linux UserHomeDir error",
			platform: &fakePlatform{
				goos:    "linux",
				homeErr: errors.New("no home directory"),
			},
			want: "",
		},
		{
			name: "FreeBSD uses the Linux layout",
			platform: &fakePlatform{
				goos: "freebsd",
				home: "/home/test",
			},
			want: filepath.Join("/home/test", ".config", "tablo"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConfigDirFor(tt.platform)
			if got != tt.want {
				t.Errorf("ConfigDirFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGlobalStyleFileFor(t *testing.T) {
	got := GlobalStyleFileFor(&fakePlatform{goos: "linux", home: "/home/test"})
	if want := filepath.Join("/home/test", ".config", "tablo", "style.yaml"); got != want {
		t.Errorf("GlobalStyleFileFor() = %q, want %q", got, want)
	}

	got = GlobalStyleFileFor(&fakePlatform{goos: "windows"})
	if got != "" {
		t.Errorf("GlobalStyleFileFor() without a config dir = %q, want empty", got)
	}
}

func TestGlobalStyleFile(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("Skipping Linux-specific test on non-Linux platform")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")

	got := GlobalStyleFile()
	if !strings.HasPrefix(got, home) || !strings.HasSuffix(got, filepath.Join("tablo", StyleFile)) {
		t.Errorf("GlobalStyleFile() = %q, want a file under %q", got, home)
	}
}
