package clusterization

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/NVIDIA/la-clusterizer/pkg/errors"
)

func TestBillableUsageQuery(t *testing.T) {
	q := BillableUsageQuery(UsageWindowDays)

	assert.True(t, strings.HasPrefix(q, "Usage"))
	assert.Contains(t, q, "TimeGenerated > ago(30d)")
	assert.Contains(t, q, "StartTime > ago(30d)")
	assert.Contains(t, q, "IsBillable == true")
	assert.Contains(t, q, "sum(Quantity) / 1000")
}

func TestSampler_SampleDailyVolume(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		missing  bool
		queryErr error
		want     float64
		code     apperrors.ErrorCode
	}{
		{name: "float", value: 3000.0, want: 100},
		{name: "int", value: int64(1500), want: 50},
		{name: "json number", value: json.Number("600"), want: 20},
		{name: "zero usage", value: 0.0, want: 0},
		{name: "query error", queryErr: errFake, code: apperrors.ErrCodeQuery},
		{name: "no rows", missing: true, code: apperrors.ErrCodeNoUsageData},
		{name: "string value", value: "lots", code: apperrors.ErrCodeNoUsageData},
		{name: "nil value", value: nil, code: apperrors.ErrCodeNoUsageData},
		{name: "bad json number", value: json.Number("x"), code: apperrors.ErrCodeNoUsageData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newFakeProvider()
			switch {
			case tt.queryErr != nil:
				p.usageErr["ws"] = tt.queryErr
			case !tt.missing:
				p.usage["ws"] = tt.value
			}

			got, err := testSampler(p).SampleDailyVolume(t.Context(), ref("ws"))
			if tt.code != "" {
				require.Error(t, err)
				assert.Equal(t, apperrors.ErrCodeQuery, apperrors.CodeOf(err))
				assert.True(t, apperrors.HasCode(err, tt.code))
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestSampler_QueryWindow(t *testing.T) {
	p := newFakeProvider()
	p.daily("ws", 10)

	_, err := testSampler(p).SampleDailyVolume(t.Context(), ref("ws"))
	require.NoError(t, err)

	require.Len(t, p.queries, 1)
	q := p.queries[0]
	assert.Equal(t, "cust-ws", q.Workspace.CustomerID)
	assert.Equal(t, fixedNow, q.End)
	assert.Equal(t, fixedNow.AddDate(0, 0, -UsageWindowDays), q.Start)
	assert.Equal(t, BillableUsageQuery(UsageWindowDays), q.Query)
}

func TestSampler_NoQuerier(t *testing.T) {
	var s *Sampler
	_, err := s.SampleDailyVolume(t.Context(), ref("ws"))
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInternal, apperrors.CodeOf(err))
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{name: "float32", in: float32(1.5), want: 1.5, ok: true},
		{name: "int", in: 7, want: 7, ok: true},
		{name: "int32", in: int32(-2), want: -2, ok: true},
		{name: "uint64", in: uint64(9), want: 9, ok: true},
		{name: "bool", in: true},
		{name: "nan", in: json.Number("NaN")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toFloat(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
