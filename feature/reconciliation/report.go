package reconciliation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/reconciliation/models"

	"github.com/minio/minio-go/v7"
)

// Report is the JSON audit document exported to object storage when a
// reconciliation completes. It is a flattened snapshot, independent of
// the database schema, so reports stay readable even after migrations.
type Report struct {
	ReconciliationID     string       `json:"reconciliation_id"`
	TenantID             string       `json:"tenant_id"`
	Name                 string       `json:"name,omitempty"`
	CompletedAt          *time.Time   `json:"completed_at,omitempty"`
	TotalAdjustmentCents int64        `json:"total_adjustment_cents"`
	Items                []ReportItem `json:"items"`
}

// ReportItem is one counted item in the report.
type ReportItem struct {
	ItemType         inventory.ItemType `json:"item_type"`
	ItemID           uint               `json:"item_id"`
	ItemName         string             `json:"item_name"`
	Unit             string             `json:"unit"`
	ExpectedQuantity float64            `json:"expected_quantity"`
	ActualQuantity   float64            `json:"actual_quantity"`
	Discrepancy      float64            `json:"discrepancy"`
	Outcome          Outcome            `json:"outcome"`
	AdjustmentCents  int64              `json:"adjustment_cents"`
	AdjustmentReason string             `json:"adjustment_reason,omitempty"`
	Notes            string             `json:"notes,omitempty"`
}

// ReportWriter exports completed reconciliations to object storage.
type ReportWriter struct {
	client storage.Client
	bucket string
}

// NewReportWriter creates a writer targeting the given bucket.
func NewReportWriter(client storage.Client, bucket string) *ReportWriter {
	return &ReportWriter{client: client, bucket: bucket}
}

// ObjectName returns the storage key for a reconciliation's report.
func (w *ReportWriter) ObjectName(tenantID, reconciliationID string) string {
	return fmt.Sprintf("reconciliations/%s/%s.json", tenantID, reconciliationID)
}

// Write serializes the reconciliation and uploads it. Returns the
// object name the report was stored under.
func (w *ReportWriter) Write(ctx context.Context, rec *models.Reconciliation) (string, error) {
	exists, err := w.client.BucketExists(ctx, w.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check report bucket: %w", err)
	}
	if !exists {
		if err := w.client.MakeBucket(ctx, w.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create report bucket: %w", err)
		}
	}

	report := Report{
		ReconciliationID:     rec.ID,
		TenantID:             rec.TenantID,
		Name:                 rec.Name,
		CompletedAt:          rec.CompletedAt,
		TotalAdjustmentCents: rec.TotalAdjustmentCents,
		Items:                make([]ReportItem, 0, len(rec.Items)),
	}
	for _, item := range rec.Items {
		report.Items = append(report.Items, ReportItem{
			ItemType:         item.ItemType,
			ItemID:           item.ItemRef,
			ItemName:         item.ItemName,
			Unit:             item.Unit,
			ExpectedQuantity: item.ExpectedQuantity,
			ActualQuantity:   item.ActualQuantity,
			Discrepancy:      item.Discrepancy,
			Outcome:          Classify(item.Discrepancy),
			AdjustmentCents:  item.AdjustmentCents,
			AdjustmentReason: string(item.AdjustmentReason),
			Notes:            item.Notes,
		})
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	objectName := w.ObjectName(rec.TenantID, rec.ID)
	_, err = w.client.PutObject(ctx, w.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	return objectName, nil
}

// Open streams a previously exported report.
func (w *ReportWriter) Open(ctx context.Context, tenantID, reconciliationID string) (io.ReadCloser, error) {
	reader, err := w.client.GetObject(ctx, w.bucket, w.ObjectName(tenantID, reconciliationID), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to open report: %w", err)
	}
	return reader, nil
}
