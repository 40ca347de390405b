package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-c", "conf.json", "-a", "localhost"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "equals form",
			args:         []string{"-bcrypt-cost=12", "-a", "localhost"},
			allowedFlags: []string{"-bcrypt-cost"},
			want:         []string{"-bcrypt-cost=12"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "dash-prefixed token is not a value",
			args:         []string{"-c", "-config=alt.json"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "-config=alt.json"},
		},
		{
			name:         "several allowed flags keep order",
			args:         []string{"-a", ":50051", "-d", "postgres://x", "-c", "conf.json"},
			allowedFlags: []string{"-a", "-d"},
			want:         []string{"-a", ":50051", "-d", "postgres://x"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/etc/gophauth/short.json"}
		assert.Equal(t, "/etc/gophauth/short.json", JsonConfigFlags())
	})

	t.Run("long -config", func(t *testing.T) {
		os.Args = []string{"testbin", "-a", ":9000", "-config", "/etc/gophauth/long.json"}
		assert.Equal(t, "/etc/gophauth/long.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"testbin", "-x", "1"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("last wins", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/a.json", "-config", "/b.json"}
		assert.Equal(t, "/b.json", JsonConfigFlags())
	})
}
