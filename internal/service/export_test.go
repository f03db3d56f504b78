package service

import (
	"strings"
	"testing"

	"github.com/kooply/label-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingURL(t *testing.T) {
	s := NewExportService("https://track.kooply.com/p")
	assert.Equal(t, "https://track.kooply.com/p?id=KBM2b100042", s.TrackingURL("KBM2b100042"))
}

func TestPayloads(t *testing.T) {
	s := NewExportService("https://track.kooply.com/p")

	p := s.Payloads("KBM2b100042")
	assert.Equal(t, "KBM2b100042", p.LabelID)
	assert.Equal(t, "KBM2b100042", p.Code128)
	assert.Equal(t, "https://track.kooply.com/p?id=KBM2b100042", p.QRPayload)
	assert.Equal(t, p.QRPayload, p.TrackingURL)
}

func TestWriteCSV(t *testing.T) {
	s := NewExportService("https://track.kooply.com/p")

	labels := []model.Label{
		{LabelID: "KBM2b100000"},
		{LabelID: "KBM2b100001"},
	}

	var sb strings.Builder
	require.NoError(t, s.WriteCSV(&sb, labels))

	want := "Pack ID,Tracking URL\n" +
		"KBM2b100000,https://track.kooply.com/p?id=KBM2b100000\n" +
		"KBM2b100001,https://track.kooply.com/p?id=KBM2b100001\n"
	assert.Equal(t, want, sb.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	s := NewExportService("https://track.kooply.com/p")

	var sb strings.Builder
	require.NoError(t, s.WriteCSV(&sb, nil))
	assert.Equal(t, "Pack ID,Tracking URL\n", sb.String())
}
