package styled

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropsActive(t *testing.T) {
	t.Parallel()

	var nilMap map[string]int
	props := Props{
		"on":      true,
		"off":     false,
		"text":    "x",
		"empty":   "",
		"one":     1,
		"zero":    0,
		"half":    0.5,
		"nan":     math.NaN(),
		"nothing": nil,
		"nilMap":  nilMap,
		"struct":  struct{}{},
	}

	active := []string{"on", "text", "one", "half", "struct"}
	inactive := []string{"off", "empty", "zero", "nan", "nothing", "nilMap", "missing"}

	for _, key := range active {
		assert.True(t, props.Active(key), key)
	}
	for _, key := range inactive {
		assert.False(t, props.Active(key), key)
	}
}

func TestNilPropsInactive(t *testing.T) {
	t.Parallel()

	var props Props
	assert.False(t, props.Active("l"))
}
