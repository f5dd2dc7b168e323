package formatter

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinner_DrawsAndClears(t *testing.T) {
	var out lockedBuffer
	stop := StartSpinner(&out, "Importing")
	stop()
	stop()

	got := out.String()
	assert.Contains(t, got, "Importing")
	assert.Contains(t, got, spinnerFrames[0])
	assert.Contains(t, got, "\r\033[K")
}
