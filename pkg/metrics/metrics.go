package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recycle_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recycle_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	}, []string{"method", "path"})

	pointsCredited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recycle_points_credited_total",
		Help: "Points credited to users by waste type",
	}, []string{"type"})

	pointsDebited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recycle_points_debited_total",
		Help: "Points debited from users",
	})

	vouchersIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recycle_vouchers_issued_total",
		Help: "Vouchers issued by voucher id",
	}, []string{"voucher"})

	redeemRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "recycle_redeem_rejected_total",
		Help: "Voucher redemptions rejected by reason",
	}, []string{"reason"})
)

func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func ObserveCredit(wasteType string, points int64) {
	pointsCredited.WithLabelValues(wasteType).Add(float64(points))
}

func ObserveDebit(points int64) {
	pointsDebited.Add(float64(points))
}

func ObserveVoucherIssued(voucherID string) {
	vouchersIssued.WithLabelValues(voucherID).Inc()
}

func ObserveRedeemRejected(reason string) {
	redeemRejected.WithLabelValues(reason).Inc()
}
