package mass

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropflag/pkg/rop"
	"github.com/ib-77/ropflag/pkg/rop/chain"
)

func double(_ *rop.Invocation, in int) (int, error) { return in * 2, nil }

func validatePositive(_ *rop.Invocation, in int) (int, error) {
	if in <= 0 {
		return 0, rop.BadParameter("Must be positive")
	}
	return in, nil
}

func validateMax100(_ *rop.Invocation, in int) (int, error) {
	if in > 100 {
		return 0, rop.BadParameter("Must be <= 100")
	}
	return in, nil
}

func TestEach(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		validator rop.Callback[int, int]
		in        []int
		want      []int
	}{
		{"identity keeps order", rop.Identity[int](), []int{5, 2, 8, 1}, []int{5, 2, 8, 1}},
		{"double", double, []int{1, 2, 3}, []int{2, 4, 6}},
		{"empty", double, []int{}, []int{}},
		{"nil input", double, nil, []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Each(tc.validator)(nil, tc.in)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEach_FailFast(t *testing.T) {
	t.Parallel()

	var evaluated []int
	counting := func(inv *rop.Invocation, in int) (int, error) {
		evaluated = append(evaluated, in)
		return validatePositive(inv, in)
	}

	got, err := Each(counting)(nil, []int{1, -5, 3})
	assert.Nil(t, got)
	assert.EqualError(t, err, "Must be positive")
	assert.True(t, rop.IsBadParameter(err))
	assert.Equal(t, []int{1, -5}, evaluated, "elements after the failing one must not be evaluated")
}

func TestEach_TypeChanging(t *testing.T) {
	t.Parallel()

	toString := func(_ *rop.Invocation, in int) (string, error) { return strconv.Itoa(in), nil }
	got, err := Each(toString)(nil, []int{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "2"}, got)
}

func TestEach_WithComposedPipeline(t *testing.T) {
	t.Parallel()

	validate := Each(chain.All(validatePositive, validateMax100))

	got, err := validate(nil, []int{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, got)

	_, err = validate(nil, []int{10, -5, 30})
	assert.EqualError(t, err, "Must be positive")

	_, err = validate(nil, []int{10, 150, 30})
	assert.EqualError(t, err, "Must be <= 100")
}

func TestEach_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := []int{1, 2, 3}
	_, err := Each(double)(nil, in)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, in)
}

func TestEachAll(t *testing.T) {
	t.Parallel()

	var evaluated []int
	counting := func(inv *rop.Invocation, in int) (int, error) {
		evaluated = append(evaluated, in)
		return validatePositive(inv, in)
	}

	got, err := EachAll(counting)(nil, []int{1, -5, 3, 0})
	assert.Nil(t, got)
	require.Error(t, err)
	assert.Equal(t, []int{1, -5, 3, 0}, evaluated)
	assert.True(t, rop.IsBadParameter(err))

	errs := rop.GetErrors(err)
	require.Len(t, errs, 2)
	assert.EqualError(t, errs[0], "element 1: Must be positive")
	assert.EqualError(t, errs[1], "element 3: Must be positive")

	got, err = EachAll(counting)(nil, []int{4, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, got)
}

func TestDeduplicate(t *testing.T) {
	t.Parallel()

	got, err := Deduplicate(nil, []string{"alpha", "beta", "alpha", "gamma", "beta"})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, got)

	got, err = Deduplicate(nil, []string{})
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)

	nums, err := Deduplicate[int](nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, nums)
	assert.Empty(t, nums)
}

func TestDeduplicate_ReturnsNewSlice(t *testing.T) {
	t.Parallel()

	in := []string{"alpha", "beta"}
	got, err := Deduplicate(nil, in)
	require.NoError(t, err)

	got[0] = "changed"
	assert.Equal(t, []string{"alpha", "beta"}, in)
}

func TestDeduplicate_AsCallback(t *testing.T) {
	t.Parallel()

	var cb rop.Callback[[]int, []int] = Deduplicate[int]
	normalize := chain.Then(cb, Each(double))

	got, err := normalize(nil, []int{1, 1, 2, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6}, got)
}

func TestEach_NilValidator(t *testing.T) {
	t.Parallel()

	got, err := Each[int, int](nil)(nil, []int{3, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, got)

	_, err = Each[int, string](nil)(nil, []int{3})
	assert.ErrorIs(t, err, rop.ErrNilCallback)
}

func TestEach_ConcurrentUse(t *testing.T) {
	t.Parallel()

	lifted := Each(chain.All(validatePositive, double))

	var wg sync.WaitGroup
	results := make([][]int, 16)
	errs := make([]error, 16)
	for g := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in := []int{g + 1, g + 2, g + 3}
			results[g], errs[g] = lifted(nil, in)
		}()
	}
	wg.Wait()

	for g := range 16 {
		require.NoError(t, errs[g])
		assert.Equal(t, []int{2 * (g + 1), 2 * (g + 2), 2 * (g + 3)}, results[g])
	}

	var failures sync.WaitGroup
	failed := make([]error, 8)
	for g := range 8 {
		failures.Add(1)
		go func() {
			defer failures.Done()
			_, failed[g] = lifted(nil, []int{1, -g, 3})
		}()
	}
	failures.Wait()

	for _, err := range failed {
		assert.EqualError(t, err, "Must be positive")
	}
}
