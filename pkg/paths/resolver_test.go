package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSourceFileDestination(t *testing.T) {
	tests := []struct {
		name      string
		targetDir string
		src       string
		want      string
	}{
		{
			name:      "modern layout used verbatim",
			targetDir: "app/src/main/java/com/example",
			src:       "Foo.java",
			want:      "app/src/main/java/com/example/Foo.java",
		},
		{
			name:      "modern layout bare app",
			targetDir: "app",
			src:       "Foo.java",
			want:      "app/Foo.java",
		},
		{
			name:      "modern layout ignores extension rules",
			targetDir: "app/libs",
			src:       "libfoo.so",
			want:      "app/libs/libfoo.so",
		},
		{
			name:      "legacy java source",
			targetDir: "src/com/example",
			src:       "Foo.java",
			want:      "app/src/main/java/com/example/Foo.java",
		},
		{
			name:      "legacy kotlin source",
			targetDir: "src/com/example",
			src:       "Foo.kt",
			want:      "app/src/main/java/com/example/Foo.kt",
		},
		{
			name:      "legacy java source bare src",
			targetDir: "src",
			src:       "Foo.java",
			want:      "app/src/main/java/Foo.java",
		},
		{
			name:      "legacy aidl",
			targetDir: "src/com/example",
			src:       "IRemote.aidl",
			want:      "app/src/main/aidl/com/example/IRemote.aidl",
		},
		{
			name:      "legacy native lib under libs",
			targetDir: "libs/armeabi",
			src:       "libfoo.so",
			want:      "app/src/main/jniLibs/armeabi/libfoo.so",
		},
		{
			name:      "legacy jar under libs",
			targetDir: "libs",
			src:       "foo.jar",
			want:      "app/libs/foo.jar",
		},
		{
			name:      "legacy src/main passthrough",
			targetDir: "src/main/res/xml",
			src:       "config.xml",
			want:      "app/src/main/res/xml/config.xml",
		},
		{
			name:      "legacy fallback",
			targetDir: "res/values",
			src:       "strings.xml",
			want:      "app/src/main/res/values/strings.xml",
		},
		{
			name:      "appointment is not app",
			targetDir: "appointment/java",
			src:       "Foo.xml",
			want:      "app/src/main/appointment/java/Foo.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveSourceFileDestination(tt.targetDir, tt.src))
		})
	}
}

// Legacy destinations must always land under app/src/main or app/libs; the
// resolver never emits a path outside the app module.
func TestResolveSourceFileDestinationLegacyPrefix(t *testing.T) {
	legacy := []struct {
		targetDir string
		src       string
	}{
		{"src/com/example", "Foo.java"},
		{"src/com/example", "IRemote.aidl"},
		{"libs/armeabi", "libfoo.so"},
		{"libs", "foo.jar"},
		{"src/main/res", "x.xml"},
		{"anything/else", "x.bin"},
	}

	for _, tt := range legacy {
		got := ResolveSourceFileDestination(tt.targetDir, tt.src)
		assert.Truef(t,
			hasPrefix(got, "app/src/main") || hasPrefix(got, "app/libs"),
			"%q/%q resolved to %q", tt.targetDir, tt.src, got)
	}
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
