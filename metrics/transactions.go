package metrics

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/omnimart-labs/omnimart-core/executor"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/metric"
)

const (
	FLOW_TTL = time.Minute * 30
)

type TransactionMetrics struct {
	successCounter    metric.Int64Counter
	failedCounter     metric.Int64Counter
	processingCounter metric.Int64Counter

	flowTimeHistogram  metric.Float64Histogram
	flowStartTimeCache *ttlcache.Cache[string, time.Time]

	opts metric.MeasurementOption
}

// NewTransactionMetrics initializes metrics for supertransaction flows
func NewTransactionMetrics(ctx context.Context, meter metric.Meter, opts metric.MeasurementOption) (*TransactionMetrics, error) {
	successCounter, err := meter.Int64Counter(
		"market.SuccessfulTransactions",
		metric.WithDescription("Number of supertransactions that reached success"),
	)
	if err != nil {
		return nil, err
	}

	failedCounter, err := meter.Int64Counter(
		"market.FailedTransactions",
		metric.WithDescription("Number of supertransactions that failed or were rejected"),
	)
	if err != nil {
		return nil, err
	}

	processingCounter, err := meter.Int64Counter(
		"market.ProcessingTransactions",
		metric.WithDescription("Number of supertransactions still processing after the wait window"),
	)
	if err != nil {
		return nil, err
	}

	flowTimeHistogram, err := meter.Float64Histogram("market.FlowTime")
	if err != nil {
		return nil, err
	}

	return &TransactionMetrics{
		successCounter:    successCounter,
		failedCounter:     failedCounter,
		processingCounter: processingCounter,
		flowTimeHistogram: flowTimeHistogram,
		flowStartTimeCache: ttlcache.New(
			ttlcache.WithTTL[string, time.Time](FLOW_TTL),
		),
		opts: opts,
	}, nil
}

func (m *TransactionMetrics) TrackStart(id string) {
	m.flowStartTimeCache.Set(id, time.Now(), ttlcache.DefaultTTL)
}

func (m *TransactionMetrics) TrackOutcome(id string, status executor.Status) {
	ctx := context.Background()
	switch status {
	case executor.StatusSuccess:
		m.successCounter.Add(ctx, 1, m.opts)
	case executor.StatusProcessing:
		m.processingCounter.Add(ctx, 1, m.opts)
	default:
		m.failedCounter.Add(ctx, 1, m.opts)
	}

	startTime := m.flowStartTimeCache.Get(id)
	if startTime == nil {
		log.Warn().Msgf("Flow start time with ID %s not found", id)
		return
	}

	m.flowTimeHistogram.Record(ctx, time.Since(startTime.Value()).Seconds(), m.opts)
}
