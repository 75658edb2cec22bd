package socket

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	err      error
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, data)
	return f.err
}

func (f *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func decode(t *testing.T, raw []byte) Event {
	t.Helper()
	var e Event
	require.NoError(t, json.Unmarshal(raw, &e))
	return e
}

func TestHub_Broadcast(t *testing.T) {
	h := NewHub(zap.NewNop())
	a, b := &fakeConn{}, &fakeConn{err: errors.New("closed")}
	h.Register("admin", a)
	h.Register("clerk", b)
	require.Equal(t, 2, h.Len())

	h.Broadcast(EventIncomeRecorded, map[string]float64{"total": 12.5})

	require.Len(t, a.messages, 1)
	require.Len(t, b.messages, 1)
	assert.Equal(t, EventIncomeRecorded, decode(t, a.messages[0]).Type)
}

func TestHub_SendTargetsAccount(t *testing.T) {
	h := NewHub(zap.NewNop())
	first, second, other := &fakeConn{}, &fakeConn{}, &fakeConn{}
	h.Register("admin", first)
	h.Register("admin", second)
	h.Register("clerk", other)

	require.NoError(t, h.Send("admin", EventAccountCreated, nil))
	require.NoError(t, h.Send("nobody", EventAccountCreated, nil))

	assert.Len(t, first.messages, 1)
	assert.Len(t, second.messages, 1)
	assert.Empty(t, other.messages)

	h.Unregister(first)
	h.Unregister(first)
	assert.Equal(t, 2, h.Len())
}

func TestHub_NilBroadcast(t *testing.T) {
	var h *Hub
	h.Broadcast(EventMachineChanged, nil)
	assert.NoError(t, h.Send("admin", EventPasswordReset, nil))
}

func TestHub_ConcurrentBroadcast(t *testing.T) {
	h := NewHub(zap.NewNop())
	conn := &fakeConn{}
	h.Register("admin", conn)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Broadcast(EventDeliveryCreated, nil)
		}()
	}
	wg.Wait()

	assert.Len(t, conn.messages, 20)
}
