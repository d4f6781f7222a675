package checksum

import (
	"strings"
	"testing"
)

// BenchmarkCalculateRaw benchmarks raw checksum calculation
func BenchmarkCalculateRaw(b *testing.B) {
	calculator := New()
	content := []byte(strings.Repeat("<Symbol>InstanceID</Symbol>\n", 1000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calculator.CalculateRaw(content)
	}
}

// BenchmarkCalculateNormalized benchmarks checksums of CRLF content
func BenchmarkCalculateNormalized(b *testing.B) {
	calculator := New()
	content := []byte(strings.Repeat("<Symbol>InstanceID</Symbol>\r\n", 1000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		calculator.CalculateNormalized(content)
	}
}
