package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA256Calculator_CalculateRaw(t *testing.T) {
	calc := New()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "Empty string",
			content:  "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "abc",
			content:  "abc",
			expected: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calc.CalculateRaw([]byte(tt.content)))
		})
	}
}

func TestSHA256Calculator_RawSeesLineEndings(t *testing.T) {
	calc := New()

	assert.NotEqual(t,
		calc.CalculateRaw([]byte("<a/>\n<b/>\n")),
		calc.CalculateRaw([]byte("<a/>\r\n<b/>\r\n")),
	)
}

func TestSHA256Calculator_CalculateNormalized(t *testing.T) {
	calc := New()
	want := calc.CalculateRaw([]byte("<a/>\n<b/>\n"))

	for _, content := range []string{
		"<a/>\n<b/>\n",
		"<a/>\r\n<b/>\r\n",
		"<a/>\r<b/>\r",
		"<a/>\r\n<b/>\n",
	} {
		assert.Equal(t, want, calc.CalculateNormalized([]byte(content)), "%q", content)
	}

	assert.NotEqual(t, want, calc.CalculateNormalized([]byte("<a/>\n<c/>\n")))
}

func TestSHA256Calculator_DoesNotModifyInput(t *testing.T) {
	content := []byte("x\r\ny")

	New().CalculateNormalized(content)

	assert.Equal(t, []byte("x\r\ny"), content)
}
