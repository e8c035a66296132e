// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EnquiriesSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enquiry_submissions_total",
			Help: "Total number of enquiries accepted by the backend",
		},
		[]string{"form"},
	)

	EnquiriesFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enquiry_submissions_failed_total",
			Help: "Total number of failed submission attempts",
		},
		[]string{"form", "error_code"},
	)

	SubmissionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "enquiry_submission_duration_seconds",
			Help: "Duration of the full submit pipeline in seconds",
		},
		[]string{"form"},
	)

	FilesUploaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "enquiry_files_uploaded_total",
			Help: "Total number of files uploaded to the asset host",
		},
		[]string{"form"},
	)

	UploadBytes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "enquiry_upload_bytes_total",
			Help: "Total bytes uploaded to the asset host",
		},
	)
)
