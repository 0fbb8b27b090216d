package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrNilWhenClean(t *testing.T) {
	errs := Errors{}
	errs.Required("name", "present")
	errs.MaxLen("name", "present", 10)
	require.NoError(t, errs.Err())
}

func TestCollectsPerField(t *testing.T) {
	errs := Errors{}
	errs.Required("company_name", "")
	errs.MaxLen("phone", "123456789012345678901", 20)

	err := errs.Err()
	require.Error(t, err)
	require.Len(t, errs, 2)
	require.Contains(t, errs["company_name"][0], "required")
	require.Contains(t, errs["phone"][0], "20 characters")
}

func TestErrorMessageStable(t *testing.T) {
	errs := Errors{}
	errs.Add("b", "second")
	errs.Add("a", "first")
	require.Equal(t, "a: first, b: second", errs.Error())
}
