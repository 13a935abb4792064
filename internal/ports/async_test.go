package ports

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowOut is a drivers.Out whose sends take a while, so writes stay
// in flight long enough to observe the drain behavior.
type slowOut struct {
	delay time.Duration

	mu    sync.Mutex
	sent  [][]byte
	open  bool
	fails bool
}

func (o *slowOut) Open() error             { o.open = true; return nil }
func (o *slowOut) Close() error            { o.open = false; return nil }
func (o *slowOut) IsOpen() bool            { return o.open }
func (o *slowOut) Number() int             { return 0 }
func (o *slowOut) String() string          { return "slow out" }
func (o *slowOut) Underlying() interface{} { return nil }

func (o *slowOut) Send(data []byte) error {
	time.Sleep(o.delay)
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.fails {
		return fmt.Errorf("send failed")
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	o.sent = append(o.sent, buf)
	return nil
}

func (o *slowOut) all() [][]byte {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([][]byte{}, o.sent...)
}

func TestAsyncOutPreservesWriteOrder(t *testing.T) {
	out := &slowOut{delay: time.Millisecond}
	p := newAsyncOut(nil, out, "test")
	defer p.Close()

	for i := 0; i < 20; i++ {
		require.NoError(t, p.Write([]byte{byte(i)}))
	}
	require.True(t, p.Drain(time.Second, 5*time.Millisecond))

	sent := out.all()
	require.Len(t, sent, 20)
	for i, msg := range sent {
		assert.Equal(t, []byte{byte(i)}, msg)
	}
}

func TestAsyncOutDrainTimesOut(t *testing.T) {
	out := &slowOut{delay: 50 * time.Millisecond}
	p := newAsyncOut(nil, out, "test")
	defer p.Close()

	for i := 0; i < 10; i++ {
		require.NoError(t, p.Write([]byte{byte(i)}))
	}
	assert.False(t, p.Drain(20*time.Millisecond, 5*time.Millisecond))
}

func TestAsyncOutWriteAfterClose(t *testing.T) {
	out := &slowOut{}
	p := newAsyncOut(nil, out, "test")
	require.NoError(t, p.Close())

	assert.Error(t, p.Write([]byte{0x01}))
}

func TestAsyncOutSendFailureDoesNotStall(t *testing.T) {
	out := &slowOut{fails: true}
	p := newAsyncOut(nil, out, "test")
	defer p.Close()

	require.NoError(t, p.Write([]byte{0x01}))
	assert.True(t, p.Drain(time.Second, 5*time.Millisecond))
}
