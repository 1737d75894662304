package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

func outcome(failure bool) Outcome {
	if failure {
		return Error
	}
	return Success
}

var defaultHistogramBucketsSeconds = []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

// Collectors are created eagerly so recording works before Init, they are
// only exposed once Init registers them.
var (
	once          sync.Once
	metricsRouter *chi.Mux

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	vaultOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vault_operations_total",
			Help: "Number of vault operations splitted by operation and execution status",
		},
		[]string{"operation", "status"},
	)

	harvestAmountCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "harvest_amount_total",
			Help: "Harvested amounts in smallest asset units splitted by portion (gross, tax, charity, net)",
		},
		[]string{"portion"},
	)

	achievementsUnlockedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "achievements_unlocked_total",
			Help: "Number of unlocked achievements splitted by achievement",
		},
		[]string{"achievement"},
	)

	totalValueLockedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "total_value_locked",
			Help: "Global total value locked in smallest asset units",
		},
	)

	tvlDriftGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "total_value_locked_drift",
			Help: "Difference between the global counter and the sum of vault balances",
		},
	)

	currentAPYGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "current_apy_bps",
			Help: "APY tier currently applied, in basis points",
		},
	)

	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	go func() {
		log.Info().Msgf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

func registerMetrics() {
	prometheus.MustRegister(
		pollerDurationHistogram,
		dbLatency,
		vaultOperationCounter,
		harvestAmountCounter,
		achievementsUnlockedCounter,
		totalValueLockedGauge,
		tvlDriftGauge,
		currentAPYGauge,
		queueSendErrorCounter,
	)
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	dbLatency.WithLabelValues(method, outcome(failure).String()).Observe(d.Seconds())
}

func RecordVaultOperation(operation string, failure bool) {
	vaultOperationCounter.WithLabelValues(operation, outcome(failure).String()).Inc()
}

func RecordHarvest(gross, tax, charity, net uint64) {
	harvestAmountCounter.WithLabelValues("gross").Add(float64(gross))
	harvestAmountCounter.WithLabelValues("tax").Add(float64(tax))
	harvestAmountCounter.WithLabelValues("charity").Add(float64(charity))
	harvestAmountCounter.WithLabelValues("net").Add(float64(net))
}

func RecordAchievementUnlocked(name string) {
	achievementsUnlockedCounter.WithLabelValues(name).Inc()
}

func RecordTotalValueLocked(tvl uint64) {
	totalValueLockedGauge.Set(float64(tvl))
}

// RecordTVLDrift records configTVL - aggregatedTVL, which is zero when the
// global counter is consistent.
func RecordTVLDrift(configTVL, aggregatedTVL uint64) {
	tvlDriftGauge.Set(tvlDrift(configTVL, aggregatedTVL))
}

// tvlDrift subtracts before converting so a small drift between large totals
// is not rounded away.
func tvlDrift(configTVL, aggregatedTVL uint64) float64 {
	if configTVL >= aggregatedTVL {
		return float64(configTVL - aggregatedTVL)
	}
	return -float64(aggregatedTVL - configTVL)
}

func RecordCurrentAPY(bps uint16) {
	currentAPYGauge.Set(float64(bps))
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}
