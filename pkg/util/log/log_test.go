package log

import (
	"runtime"
	"strings"
	"testing"
)

func TestRelativeFilePathPrettier(t *testing.T) {
	pc := make([]uintptr, 1)
	runtime.Callers(1, pc)
	currentFrames := runtime.CallersFrames(pc)
	currentFunc, _ := currentFrames.Next()
	currentFunc.Line = 11 // so it's not too fragile
	base := strings.TrimSuffix(currentFunc.File, "pkg/util/log/log_test.go")
	tests := []struct {
		name  string
		f     *runtime.Frame
		want1 string
		want2 string
	}{
		{
			name:  "current function",
			f:     &currentFunc,
			want1: "log.TestRelativeFilePathPrettier()",
			want2: " pkg/util/log/log_test.go:11",
		},
		{
			name:  "empty",
			f:     &runtime.Frame{},
			want1: "()",
			want2: " :0",
		},
		{
			name: "reconcile",
			f: &runtime.Frame{
				Function: "github.com/openstack-esi/nodenet/pkg/nodenet.(*manager).Reconcile",
				File:     base + "pkg/nodenet/nodenet.go",
				Line:     62,
			},
			want1: "nodenet.(*manager).Reconcile()",
			want2: " pkg/nodenet/nodenet.go:62",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got1, got2 := RelativeFilePathPrettier(tt.f)
			if got1 != tt.want1 {
				t.Errorf("RelativeFilePathPrettier() got1 = %v, want %v", got1, tt.want1)
			}
			if got2 != tt.want2 {
				t.Errorf("RelativeFilePathPrettier() got2 = %v, want %v", got2, tt.want2)
			}
		})
	}
}
