package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyExt(t *testing.T) {
	tests := []struct {
		src  string
		want ExtClass
	}{
		{"Foo.java", ClassSource},
		{"Foo.kt", ClassSource},
		{"src/android/Foo.JAVA", ClassSource},
		{"IRemote.aidl", ClassAIDL},
		{"libfoo.so", ClassNativeLib},
		{"foo.jar", ClassOther},
		{"device.js", ClassOther},
		{"data.json", ClassOther},
		{"no-extension", ClassOther},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyExt(tt.src))
		})
	}
}
