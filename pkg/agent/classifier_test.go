package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIssueBGPDescription(t *testing.T) {
	c := ClassifyIssue("bgp neighbor peering flapping on core-rtr-01", "")

	assert.Equal(t, TypeBGP, c.Category)
	assert.Equal(t, 1.0, c.Confidence)
	assert.True(t, c.ShouldHandoff)
}

func TestClassifyIssueDiagnosticsWeighHalf(t *testing.T) {
	// One description match plus one diagnostics match: 1 + 0.5 = 1.5,
	// confidence 0.5, which is not enough to hand off.
	c := ClassifyIssue(
		"ospf issue on distribution switch",
		"neighbor stuck in exstart",
	)

	assert.Equal(t, TypeOSPF, c.Category)
	assert.InDelta(t, 0.5, c.Confidence, 1e-9)
	assert.False(t, c.ShouldHandoff, "confidence must exceed 0.5 to hand off")
}

func TestClassifyIssueConfidenceCapped(t *testing.T) {
	c := ClassifyIssue(
		"vlan trunk misconfigured, spanning-tree bpdu storm, mac flap detected, broadcast storm on stp domain",
		"vlan 100 trunk port-channel1",
	)

	assert.Equal(t, TypeLayer2, c.Category)
	assert.Equal(t, 1.0, c.Confidence)
	assert.True(t, c.ShouldHandoff)
}

func TestClassifyIssueNoMatch(t *testing.T) {
	c := ClassifyIssue("fan tray failure on chassis 2", "environment alarm active")

	assert.Equal(t, TypeGeneral, c.Category)
	assert.Equal(t, 0.0, c.Confidence)
	assert.False(t, c.ShouldHandoff)
}

func TestClassifyIssueCaseInsensitive(t *testing.T) {
	c := ClassifyIssue("BGP NEIGHBOR down, PEERING lost, session FLAPPING", "")

	assert.Equal(t, TypeBGP, c.Category)
	assert.True(t, c.ShouldHandoff)
}

func TestClassifyIssueKeywordCountsOncePerText(t *testing.T) {
	// "bgp" appearing three times in the description still scores 1.
	c := ClassifyIssue("bgp bgp bgp", "")

	assert.Equal(t, TypeBGP, c.Category)
	assert.InDelta(t, 1.0/3.0, c.Confidence, 1e-9)
	assert.False(t, c.ShouldHandoff)
}

func TestClassifyIssueEmbeddedKeywordCountsOnce(t *testing.T) {
	// "ospf" contains the shorter keyword "spf"; a single "ospf" occurrence
	// must score 1, not 2.
	c := ClassifyIssue("ospf flap reported", "")

	assert.Equal(t, TypeOSPF, c.Category)
	assert.InDelta(t, 1.0/3.0, c.Confidence, 1e-9)

	// A bare "spf recalculation" still counts the short keyword.
	c = ClassifyIssue("spf recalculation storms", "")
	assert.Equal(t, TypeOSPF, c.Category)
	assert.InDelta(t, 1.0/3.0, c.Confidence, 1e-9)
}
