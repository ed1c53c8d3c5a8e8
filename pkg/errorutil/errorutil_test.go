package errorutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(FatalErr("artifacts missing")))
	assert.True(t, IsFatal(FatalWrap("load failed", errors.New("no such file"))))
	assert.False(t, IsFatal(Recoverable("table skipped")))
	assert.False(t, IsFatal(errors.New("plain error")))
	assert.False(t, IsFatal(nil))
}

func TestIsFatalThroughWrapping(t *testing.T) {
	inner := FatalErr("artifacts missing")
	wrapped := fmt.Errorf("stage predict: %w", inner)

	assert.True(t, IsFatal(wrapped))
}

func TestWrapKeepsDetails(t *testing.T) {
	err := RecoverableWrap("failed to read bronze input", errors.New("connection refused"))

	assert.Contains(t, err.Error(), "failed to read bronze input")
	assert.Contains(t, err.Error(), "connection refused")
	assert.NotEmpty(t, err.DevDetails)
}
