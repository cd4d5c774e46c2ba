package pairs_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/dmitrymomot/simplehelpers/pkg/logger"
	"github.com/dmitrymomot/simplehelpers/pkg/pairs"
	"github.com/dmitrymomot/simplehelpers/pkg/validator"
)

func cookieHeader(n int) string {
	parts := make([]string, 0, n)
	for i := range n {
		parts = append(parts, "name"+strconv.Itoa(i)+"=value"+strconv.Itoa(i))
	}
	return strings.Join(parts, "; ")
}

func BenchmarkExtract(b *testing.B) {
	e := pairs.NewExtractor(validator.NewChecker(logger.Discard()), nil)

	for _, n := range []int{1, 10, 100} {
		header := cookieHeader(n)
		key := "name" + strconv.Itoa(n-1)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				_ = e.Extract(header, key)
			}
		})
	}
}

func BenchmarkExtract_QueryString(b *testing.B) {
	e := pairs.NewExtractor(validator.NewChecker(logger.Discard()), nil)
	query := "utm_source=mail&utm_medium=email&utm_campaign=launch&ref=home&utm_source=web"
	b.ResetTimer()
	for b.Loop() {
		_ = e.Extract(query, "utm_source", pairs.WithDelimiter("&"))
	}
}
