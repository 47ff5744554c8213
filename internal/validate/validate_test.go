package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name   string `validate:"required,min=3"`
	Rating int    `validate:"gte=1,lte=5"`
}

func TestStruct(t *testing.T) {
	t.Run("valid input returns nil", func(t *testing.T) {
		errs := Struct(sample{Name: "dune", Rating: 3})
		assert.Nil(t, errs)
	})

	t.Run("missing required field", func(t *testing.T) {
		errs := Struct(sample{Rating: 3})
		assert.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "Name is required", errs[0].Message)
	})

	t.Run("range violations", func(t *testing.T) {
		errs := Struct(sample{Name: "dune", Rating: 6})
		assert.Len(t, errs, 1)
		assert.Equal(t, "rating", errs[0].Field)
		assert.Equal(t, "Rating must be at most 5", errs[0].Message)
	})

	t.Run("multiple failures reported together", func(t *testing.T) {
		errs := Struct(sample{Name: "ab", Rating: 0})
		assert.Len(t, errs, 2)
	})

	t.Run("field error is an error", func(t *testing.T) {
		errs := Struct(sample{Rating: 3})
		var err error = errs[0]
		assert.EqualError(t, err, "Name is required")
	})
}
