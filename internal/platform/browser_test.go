package platform

import (
	"testing"
)

func TestBrowserCommand(t *testing.T) {
	const link = "https://i.ytimg.com/vi/abc/hqdefault.jpg"

	tests := []struct {
		name     string
		goos     string
		url      string
		wantName string
		wantArgs []string
		wantErr  bool
	}{
		{name: "macOS", goos: OSDarwin, url: link, wantName: OpenCommand, wantArgs: []string{link}},
		{name: "windows", goos: OSWindows, url: link, wantName: RundllCommand, wantArgs: []string{RundllHandler, link}},
		{name: "linux", goos: OSLinux, url: link, wantName: XDGOpenCommand, wantArgs: []string{link}},
		{name: "android", goos: OSAndroid, url: link, wantName: AMCommand,
			wantArgs: []string{"start", "-a", "android.intent.action.VIEW", "-d", link}},
		{name: "unsupported os", goos: "plan9", url: link, wantErr: true},
		{name: "file scheme rejected", goos: OSLinux, url: "file:///etc/passwd", wantErr: true},
		{name: "not a url", goos: OSLinux, url: "://bad", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args, err := browserCommand(tt.goos, tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got command %s %v", name, args)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if name != tt.wantName {
				t.Errorf("expected command %s, got %s", tt.wantName, name)
			}
			if len(args) != len(tt.wantArgs) {
				t.Fatalf("expected args %v, got %v", tt.wantArgs, args)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("arg %d: expected %s, got %s", i, tt.wantArgs[i], args[i])
				}
			}
		})
	}
}
