package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
		json  bool
		want  bool // debug enabled
	}{
		{name: "debug console", level: "debug", want: true},
		{name: "info json", level: "INFO", json: true, want: false},
		{name: "unknown level falls back to info", level: "loud", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.level, tt.json)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.Core().Enabled(LevelDebug))
		})
	}
}
