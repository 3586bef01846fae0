package core

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestMatchesSearch(t *testing.T) {
	tests := []struct {
		name   string
		term   string
		fields []string
		want   bool
	}{
		{name: "empty term matches all", term: "", fields: []string{"John"}, want: true},
		{name: "blank term matches all", term: "   ", fields: nil, want: true},
		{name: "case insensitive", term: "joHN", fields: []string{"John", "Smith"}, want: true},
		{name: "substring of any field", term: "mith", fields: []string{"John", "Smith"}, want: true},
		{name: "no match", term: "zed", fields: []string{"John", "Smith"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesSearch(tt.term, tt.fields...))
		})
	}
}

func TestDelay(t *testing.T) {
	t.Run("elapses", func(t *testing.T) {
		assert.NoError(t, Delay(context.Background(), time.Millisecond))
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.Equal(t, context.Canceled, Delay(ctx, time.Hour))
	})
}

func TestMillis(t *testing.T) {
	now := time.Date(2023, 9, 1, 8, 30, 0, 0, time.UTC)
	assert.True(t, now.Equal(FromMillis(NowMillis(now))))
}

func TestValidateStruct(t *testing.T) {
	validate := validator.New()
	_en := en.New()
	translator, _ := ut.New(_en, _en).GetTranslator("en")
	InitValidators(validate, translator)

	type form struct {
		Name  string `json:"name" validate:"min=3"`
		Phone string `json:"phone" validate:"digits"`
		Date  string `json:"date" validate:"isodate"`
	}

	err := ValidateStruct(validate, translator, form{Name: "ab", Phone: "12a", Date: "01/09/2023"},
		map[string]string{"name.min": "Name is too short"})
	vErr, ok := err.(*ValidationError)
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, map[string]string{
		"name":  "Name is too short",
		"phone": "phone must contain only digits",
		"date":  "date must be a date formatted as YYYY-MM-DD",
	}, vErr.FieldMap())

	assert.NoError(t, ValidateStruct(validate, translator, form{Name: "abc", Phone: "123", Date: "2023-09-01"}, nil))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", FormatAmount(0))
	assert.Equal(t, "750", FormatAmount(750))
	assert.Equal(t, "25,000", FormatAmount(25000))
	assert.Equal(t, "₹1,250,000", FormatRupees(1250000))
}
