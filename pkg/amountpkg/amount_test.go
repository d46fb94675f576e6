package amountpkg

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		input   string
		want    string
		wantErr error
	}{
		{input: "10", want: "10"},
		{input: "0.0001", want: "0.0001"},
		{input: "12.50", want: "12.5"},
		{input: "0", wantErr: ErrNonPositive},
		{input: "-5", wantErr: ErrNonPositive},
		{input: "!@#$", wantErr: ErrInvalid},
		{input: "", wantErr: ErrInvalid},
	}

	for _, tc := range testCases {
		got, err := Parse(tc.input)
		if tc.wantErr != nil {
			require.ErrorIs(t, err, tc.wantErr, "Parse(%q)", tc.input)
			continue
		}

		require.NoError(t, err, "Parse(%q)", tc.input)
		require.Equal(t, tc.want, got.String())
	}
}

func TestValidAmount(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("amount", ValidAmount))

	type request struct {
		Amount string `validate:"amount"`
	}

	require.NoError(t, v.Struct(request{Amount: "1.25"}))
	require.Error(t, v.Struct(request{Amount: "-1"}))
	require.Error(t, v.Struct(request{Amount: "abc"}))
}
