package services

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntakeMetrics_NilIsNoop(t *testing.T) {
	var m *IntakeMetrics
	assert.NotPanics(t, func() {
		m.ObserveSubmission(FormLead, OutcomeAccepted)
		m.ObserveDelivery(FormLead, RecipientAdmin, errors.New("x"))
		m.ObserveSheetAppend(nil)
		m.ObserveLeadScore(98)
	})
}

func TestIntakeMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewIntakeMetrics(reg)

	m.ObserveSubmission(FormContact, OutcomeInvalid)
	m.ObserveSubmission(FormContact, OutcomeInvalid)
	m.ObserveDelivery(FormContact, RecipientClient, errors.New("bounced"))
	m.ObserveSheetAppend(nil)
	m.ObserveLeadScore(98)
	m.ObserveLeadScore(23)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissions.WithLabelValues(FormContact, OutcomeInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.deliveries.WithLabelValues(FormContact, RecipientClient, "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sheetAppend.WithLabelValues("ok")))
	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
