package listener

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fekuna/omnipos-kit-inventory/internal/issuance"
	"github.com/fekuna/omnipos-kit-inventory/internal/issuance/dto"
	"github.com/fekuna/omnipos-kit-inventory/internal/issuance/repository"
	"github.com/fekuna/omnipos-kit-inventory/internal/issuance/usecase"
	"github.com/fekuna/omnipos-kit-inventory/internal/model"
	"github.com/fekuna/omnipos-kit-inventory/internal/testkit"
	"github.com/fekuna/omnipos-kit-inventory/pkg/broker"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chanReader struct {
	msgs chan kafka.Message

	mu        sync.Mutex
	committed []int64
}

func (r *chanReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	select {
	case <-ctx.Done():
		return kafka.Message{}, ctx.Err()
	case m := <-r.msgs:
		return m, nil
	}
}

func (r *chanReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *chanReader) commits() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.committed)
}

func message(t *testing.T, offset int64, evt *broker.Event) kafka.Message {
	t.Helper()
	raw, err := json.Marshal(evt)
	require.NoError(t, err)
	return kafka.Message{Topic: "consumption", Offset: offset, Value: raw}
}

func event(t *testing.T, eventType string, payload interface{}) *broker.Event {
	t.Helper()
	evt, err := broker.NewEvent(eventType, payload)
	require.NoError(t, err)
	return evt
}

// run starts l and drains n commits before stopping it.
func run(t *testing.T, l *ConsumptionListener, reader *chanReader, n int) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Start(ctx)
		close(done)
	}()
	require.Eventually(t, func() bool { return reader.commits() == n }, 3*time.Second, 10*time.Millisecond)
	cancel()
	<-done
}

type fixture struct {
	*testkit.Env
	uc          issuance.UseCase
	reader      *chanReader
	deadLetters *broker.MemoryPublisher
	box         model.Location
	item        *model.Item
}

func setup(t *testing.T) *fixture {
	t.Helper()
	env := testkit.New(t)
	box := env.Kit(t, "K737", "1")[0]
	it := env.Item(t, model.TrackingQuantity)
	env.Stock(t, it.ID, box, "10")
	return &fixture{
		Env:         env,
		uc:          usecase.NewIssuanceUseCase(repository.NewMemoryRepository(), env.Ledger, env.Items, nil, nil, env.Log),
		reader:      &chanReader{msgs: make(chan kafka.Message, 8)},
		deadLetters: broker.NewMemoryPublisher(),
		box:         box,
		item:        it,
	}
}

func (f *fixture) listener(uc issuance.UseCase) *ConsumptionListener {
	l := NewConsumptionListener(f.reader, uc, f.Locations, f.deadLetters, f.Log)
	l.backoff = time.Millisecond
	return l
}

func (f *fixture) consumption(workOrder, qty string) ConsumptionPayload {
	return ConsumptionPayload{
		WorkOrderID: workOrder, KitID: "K737", BoxNumber: "1", ItemID: f.item.ID,
		Quantity: testkit.D(qty), Technician: "tech-4",
	}
}

func TestConsumptionListener_IssuesFromEvents(t *testing.T) {
	f := setup(t)

	f.reader.msgs <- kafka.Message{Offset: 1, Value: []byte("not json")}
	f.reader.msgs <- message(t, 2, event(t, "SomethingElse", map[string]string{"item_id": f.item.ID}))
	f.reader.msgs <- message(t, 3, event(t, EventWorkOrderConsumption, f.consumption("WO-1", "3")))
	f.reader.msgs <- message(t, 4, event(t, EventWorkOrderConsumption, f.consumption("WO-2", "50")))

	run(t, f.listener(f.uc), f.reader, 4)

	list, _, err := f.uc.ListIssuances(context.Background(), &dto.IssuanceFilters{ItemID: f.item.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "tech-4", list[0].Recipient)
	assert.Equal(t, "work order WO-1", list[0].Purpose)
	assert.True(t, f.Qty(t, f.item.ID, f.box).Equal(testkit.D("7")))

	rejected := f.deadLetters.OfType(EventConsumptionRejected)
	require.Len(t, rejected, 2)
	var r RejectedConsumption
	require.NoError(t, json.Unmarshal(rejected[1].Payload, &r))
	assert.Equal(t, "WO-2", r.WorkOrderID)
	assert.Equal(t, 1, r.Attempts)
	assert.Contains(t, r.Reason, "insufficient stock")
}

func TestConsumptionListener_RedeliveryIssuesOnce(t *testing.T) {
	f := setup(t)
	evt := event(t, EventWorkOrderConsumption, f.consumption("WO-7", "4"))

	f.reader.msgs <- message(t, 1, evt)
	f.reader.msgs <- message(t, 2, evt)

	run(t, f.listener(f.uc), f.reader, 2)

	list, total, err := f.uc.ListIssuances(context.Background(), &dto.IssuanceFilters{WorkOrderID: "WO-7"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.NotNil(t, list[0].SourceEventID)
	assert.Equal(t, evt.EventID, *list[0].SourceEventID)
	assert.True(t, f.Qty(t, f.item.ID, f.box).Equal(testkit.D("6")))
	assert.Empty(t, f.deadLetters.Events())
}

// flakyIssuer fails the first n issues with a transient error.
type flakyIssuer struct {
	issuance.UseCase
	failures int32
	calls    int32
}

func (u *flakyIssuer) Issue(ctx context.Context, in *dto.IssueInput) (*model.Issuance, error) {
	atomic.AddInt32(&u.calls, 1)
	if atomic.AddInt32(&u.failures, -1) >= 0 {
		return nil, &model.TransientFailureError{Op: "issue", Cause: errors.New("ledger store timeout")}
	}
	return u.UseCase.Issue(ctx, in)
}

func TestConsumptionListener_RetriesTransientFailures(t *testing.T) {
	f := setup(t)
	flaky := &flakyIssuer{UseCase: f.uc, failures: 2}

	f.reader.msgs <- message(t, 1, event(t, EventWorkOrderConsumption, f.consumption("WO-3", "2")))
	run(t, f.listener(flaky), f.reader, 1)

	assert.Equal(t, int32(3), atomic.LoadInt32(&flaky.calls))
	assert.True(t, f.Qty(t, f.item.ID, f.box).Equal(testkit.D("8")))
	assert.Empty(t, f.deadLetters.Events())
}

func TestConsumptionListener_DeadLettersAfterRetries(t *testing.T) {
	f := setup(t)
	flaky := &flakyIssuer{UseCase: f.uc, failures: 100}

	f.reader.msgs <- message(t, 1, event(t, EventWorkOrderConsumption, f.consumption("WO-4", "2")))
	run(t, f.listener(flaky), f.reader, 1)

	assert.Equal(t, int32(3), atomic.LoadInt32(&flaky.calls))
	assert.True(t, f.Qty(t, f.item.ID, f.box).Equal(testkit.D("10")))

	rejected := f.deadLetters.OfType(EventConsumptionRejected)
	require.Len(t, rejected, 1)
	var r RejectedConsumption
	require.NoError(t, json.Unmarshal(rejected[0].Payload, &r))
	assert.Equal(t, "WO-4", r.WorkOrderID)
	assert.Equal(t, 3, r.Attempts)
	assert.NotEmpty(t, r.Original)
}

func TestConsumptionListener_ShutdownLeavesMessageUncommitted(t *testing.T) {
	f := setup(t)
	flaky := &flakyIssuer{UseCase: f.uc, failures: 100}
	l := f.listener(flaky)
	l.backoff = time.Hour

	f.reader.msgs <- message(t, 1, event(t, EventWorkOrderConsumption, f.consumption("WO-5", "1")))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		l.Start(ctx)
		close(done)
	}()
	require.Eventually(t, func() bool { return atomic.LoadInt32(&flaky.calls) == 1 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Zero(t, f.reader.commits())
	assert.Empty(t, f.deadLetters.Events())
}
