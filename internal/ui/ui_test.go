package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignatureBar(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	tests := []struct {
		name              string
		count, max, width int
		want              string
	}{
		{name: "half", count: 50, max: 100, width: 10, want: "#####----- 50"},
		{name: "full", count: 12345, max: 12345, width: 5, want: "##### 12,345"},
		{name: "over max clamps", count: 300, max: 100, width: 5, want: "##### 300"},
		{name: "zero max", count: 0, max: 0, width: 5, want: "----- 0"},
		{name: "narrow width widened", count: 1, max: 1, width: 2, want: "##### 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SignatureBar(tt.count, tt.max, tt.width))
		})
	}
}

func TestSignatures(t *testing.T) {
	assert.Equal(t, "999", Signatures(999))
	assert.Equal(t, "1,000,000", Signatures(1000000))
}

func TestSetTheme_UnknownFallsBackToClassic(t *testing.T) {
	SetTheme("sepia")
	defer SetTheme("classic")
	assert.Equal(t, "✔", Current().SymOK)
	assert.Equal(t, "░", Current().BarEmpty)
}

func TestOKAndFail(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var out bytes.Buffer
	OK(&out, "saved")
	Fail(&out, "load failed")
	assert.Equal(t, "ok saved\nerror: load failed\n", out.String())
}

func TestPanel(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var out bytes.Buffer
	Panel(&out, []string{"first", "second line"})
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[1], "first")
	assert.Contains(t, lines[2], "second line")
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
}
