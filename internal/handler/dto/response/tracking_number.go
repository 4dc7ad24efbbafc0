package response

import (
	"time"

	"tracking-number-generator/internal/domain/tracking"
)

type TrackingNumberResponse struct {
	TrackingNumber string `json:"tracking_number"`
	CreatedAt      string `json:"created_at"`
	RequestID      string `json:"request_id"`
	CustomerID     string `json:"customer_id"`
	CustomerName   string `json:"customer_name"`
}

func FromIssuanceResult(r *tracking.IssuanceResult) *TrackingNumberResponse {
	return &TrackingNumberResponse{
		TrackingNumber: r.TrackingNumber.String(),
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
		RequestID:      r.RequestID.String(),
		CustomerID:     r.CustomerID.String(),
		CustomerName:   r.CustomerName.String(),
	}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}
