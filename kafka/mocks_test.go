package kafka

import (
	// Go Internal Packages
	"context"
	"sync"

	// External Packages
	"github.com/stretchr/testify/mock"
	"github.com/twmb/franz-go/pkg/kgo"
)

// mockKafkaClient is a mock implementation of kafkaClient for testing.
type mockKafkaClient struct {
	mock.Mock
}

func (m *mockKafkaClient) TryProduce(ctx context.Context, r *kgo.Record, promise func(*kgo.Record, error)) {
	m.Called(ctx, r, promise)
}

func (m *mockKafkaClient) Flush(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockKafkaClient) BufferedProduceRecords() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

func (m *mockKafkaClient) Close() {
	m.Called()
}

// fakeClient buffers records and resolves them on demand from another
// goroutine, like the franz-go promise goroutine does.
type fakeClient struct {
	mu       sync.Mutex
	buffered []*kgo.Record
	promises []func(*kgo.Record, error)
	offset   int64
	closed   bool
}

func (f *fakeClient) TryProduce(_ context.Context, r *kgo.Record, promise func(*kgo.Record, error)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buffered = append(f.buffered, r)
	f.promises = append(f.promises, promise)
}

// resolve completes the oldest n buffered records with err and waits for the
// promises to run.
func (f *fakeClient) resolve(n int, err error) {
	f.mu.Lock()
	if n > len(f.buffered) {
		n = len(f.buffered)
	}
	records, promises := f.buffered[:n], f.promises[:n]
	f.buffered, f.promises = f.buffered[n:], f.promises[n:]
	for _, r := range records {
		r.Partition = 3
		r.Offset = f.offset
		f.offset++
	}
	f.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i, r := range records {
			promises[i](r, err)
		}
	}()
	wg.Wait()
}

func (f *fakeClient) Flush(ctx context.Context) error {
	f.resolve(f.count(), nil)
	return ctx.Err()
}

func (f *fakeClient) BufferedProduceRecords() int64 {
	return int64(f.count())
}

func (f *fakeClient) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakeClient) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.buffered)
}
