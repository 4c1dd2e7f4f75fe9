package loader

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFetchAll_AllSucceed(t *testing.T) {
	var a, b string

	err := FetchAll(context.Background(),
		Into(&a, func(context.Context) (string, error) { return "a", nil }),
		Into(&b, func(context.Context) (string, error) { return "b", nil }),
	)

	assert.NoError(t, err)
	assert.Equal(t, "a", a)
	assert.Equal(t, "b", b)
}

func TestFetchAll_PartialDataSurvivesSiblingFailure(t *testing.T) {
	boom := errors.New("boom")
	var a, b string

	err := FetchAll(context.Background(),
		Into(&a, func(context.Context) (string, error) { return "", boom }),
		Into(&b, func(ctx context.Context) (string, error) {
			// Slower than the failing sibling; must not be cancelled.
			select {
			case <-time.After(20 * time.Millisecond):
				return "b", nil
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}),
	)

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, a)
	assert.Equal(t, "b", b)
}

func TestFetchAll_NoTasks(t *testing.T) {
	assert.NoError(t, FetchAll(context.Background()))
}
