package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaultsFillsLegacyRecord(t *testing.T) {
	var c Campaign

	c.ApplyDefaults()

	assert.Equal(t, "Sim", c.Contract.Required)
	assert.Equal(t, ContractStatusPending, c.Contract.Status)
	assert.Equal(t, ProductStatusNotSent, c.Product.Status)
	assert.Equal(t, ScriptStatusNotStarted, c.Script.Status)
	assert.Equal(t, 1, c.Script.Versions)
	assert.Equal(t, 1, c.Content.Quantity)
	assert.NotNil(t, c.Content.Items)
	assert.Equal(t, PostStatusNotPosted, c.Posting.Status)
	assert.Equal(t, MetricsStatusPending, c.Metrics.Status)
	assert.Equal(t, InvoiceStatusPending, c.Invoice.Status)
	assert.Equal(t, PayoutStatusPending, c.Payout.Status)
	assert.NotNil(t, c.Checklist)
	assert.NotNil(t, c.Timeline)
}

func TestApplyDefaultsKeepsExistingValues(t *testing.T) {
	c := Campaign{
		Contract: Contract{Required: "Não", Status: ContractStatusSigned},
		Script:   Script{Versions: 3, Status: ScriptStatusApproved},
	}

	c.ApplyDefaults()

	assert.Equal(t, "Não", c.Contract.Required)
	assert.Equal(t, ContractStatusSigned, c.Contract.Status)
	assert.Equal(t, 3, c.Script.Versions)
	assert.Equal(t, ScriptStatusApproved, c.Script.Status)
}

func TestLeadIsTerminal(t *testing.T) {
	assert.False(t, (&Lead{Status: LeadStatusWaiting}).IsTerminal())
	assert.True(t, (&Lead{Status: LeadStatusRefused}).IsTerminal())
	assert.True(t, (&Lead{Status: LeadStatusClosed}).IsTerminal())
}
