package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/url"

	"github.com/kooply/label-service/internal/domain/model"
)

// ExportService renders labels for the downstream consumers that embed the
// label string verbatim: the CSV bulk export, the QR payload (a tracking URL
// with the label as query parameter) and the Code128 barcode (the raw label).
type ExportService struct {
	trackingBaseURL string
}

// NewExportService creates an ExportService. trackingBaseURL is the public
// tracking endpoint, e.g. "https://track.kooply.com/p".
func NewExportService(trackingBaseURL string) *ExportService {
	return &ExportService{trackingBaseURL: trackingBaseURL}
}

// TrackingURL builds the public tracking URL for a label.
func (s *ExportService) TrackingURL(labelID string) string {
	return fmt.Sprintf("%s?id=%s", s.trackingBaseURL, url.QueryEscape(labelID))
}

// Payloads returns the rendering-target payloads for a label.
func (s *ExportService) Payloads(labelID string) model.LabelPayloads {
	tracking := s.TrackingURL(labelID)
	return model.LabelPayloads{
		LabelID:     labelID,
		QRPayload:   tracking,
		Code128:     labelID,
		TrackingURL: tracking,
	}
}

// WriteCSV streams the two-column bulk export for the given labels.
func (s *ExportService) WriteCSV(w io.Writer, labels []model.Label) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Pack ID", "Tracking URL"}); err != nil {
		return err
	}
	for _, label := range labels {
		if err := cw.Write([]string{label.LabelID, s.TrackingURL(label.LabelID)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
