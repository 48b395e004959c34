package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/systrack/systrack-api/internal/api/metrics"
	"github.com/systrack/systrack-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditAppender persists a single audit record and reports failure.
type AuditAppender interface {
	Append(ctx context.Context, rec ports.AuditRecord) error
}

// AuditDispatcher is an asynchronous ports.AuditRecorder. Records are routed
// to a fixed set of workers by hashing the entity id, so entries about one
// entity are written in the order they were recorded.
type AuditDispatcher struct {
	workers []chan ports.AuditRecord
	store   AuditAppender
	log     zerolog.Logger
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewAuditDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, store AuditAppender, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan ports.AuditRecord, numWorkers),
		store:   store,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuditRecord, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers run until Close.
func (d *AuditDispatcher) Start() {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(i, ch)
	}
}

// Record hands rec to the worker responsible for its entity. The caller's
// context only contributes the record; the write itself outlives the request.
// Records arriving after Close are written synchronously. The record is
// stamped here, before it waits in a queue.
func (d *AuditDispatcher) Record(ctx context.Context, rec ports.AuditRecord) {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.write(context.WithoutCancel(ctx), -1, rec)
		return
	}
	i := d.shardIndex(rec.EntityID)
	d.workers[i] <- rec
	metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// Close stops accepting work and blocks until every queued record is written.
func (d *AuditDispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// shardIndex maps an entity id deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(entityID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(entityID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *AuditDispatcher) runWorker(id int, ch <-chan ports.AuditRecord) {
	defer d.wg.Done()
	label := strconv.Itoa(id)
	for rec := range ch {
		d.write(context.Background(), id, rec)
		metrics.AuditQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
	}
}

func (d *AuditDispatcher) write(ctx context.Context, worker int, rec ports.AuditRecord) {
	if err := d.store.Append(ctx, rec); err != nil {
		metrics.AuditErrorsTotal.WithLabelValues(string(rec.Action)).Inc()
		d.log.Error().Err(err).
			Str("action", string(rec.Action)).
			Str("entity_id", rec.EntityID).
			Int("worker_id", worker).
			Msg("audit write failed")
		return
	}
	metrics.AuditEntriesTotal.WithLabelValues(string(rec.Action)).Inc()
}
