package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoiseVerdictDetection(t *testing.T) {
	assert.True(t, IsNoiseVerdict("This looks like a FALSE POSITIVE from the poller."))
	assert.True(t, IsNoiseVerdict("Duplicate alert; the original is already being worked."))
	assert.True(t, IsNoiseVerdict("No action needed, the link recovered."))
	assert.True(t, IsNoiseVerdict("This alert is not actionable without more data."))
	assert.True(t, IsNoiseVerdict("Transient blip that can be safely ignored."))

	assert.False(t, IsNoiseVerdict("The neighbor is down and needs attention."))
	assert.False(t, IsNoiseVerdict(""))
}

func TestResolvedVerdictDetection(t *testing.T) {
	assert.True(t, IsResolvedVerdict("The issue has been resolved after clearing the session."))
	assert.True(t, IsResolvedVerdict("Traffic is BACK TO NORMAL on both links."))
	assert.True(t, IsResolvedVerdict("Problem is resolved; monitoring confirms stability."))
	assert.True(t, IsResolvedVerdict("Change applied and the issue is fixed."))
	assert.True(t, IsResolvedVerdict("Peering re-established, resolved successfully."))

	assert.False(t, IsResolvedVerdict("Still investigating the flapping."))
	assert.False(t, IsResolvedVerdict("I will resolve this by tomorrow."))
}
