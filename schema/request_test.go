package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Some clients send is_urgent as a plain bool, others as a 0/1
// integer. Both forms must decode.
func TestUrgencyUnmarshal(t *testing.T) {
	cases := []struct {
		raw  string
		want Urgency
	}{
		{`{"is_urgent": true}`, true},
		{`{"is_urgent": false}`, false},
		{`{"is_urgent": 1}`, true},
		{`{"is_urgent": 0}`, false},
		{`{"is_urgent": "1"}`, true},
		{`{"is_urgent": null}`, false},
	}

	for _, c := range cases {
		var request AidRequest
		assert.NoError(t, json.Unmarshal([]byte(c.raw), &request), c.raw)
		assert.Equal(t, c.want, request.IsUrgent, c.raw)
	}

	var request AidRequest
	assert.Error(t, json.Unmarshal([]byte(`{"is_urgent": "yes"}`), &request))
}

func TestUrgencyMarshal(t *testing.T) {
	out, err := json.Marshal(AidRequest{IsUrgent: true})
	assert.NoError(t, err)
	assert.Contains(t, string(out), `"is_urgent":true`)
}

func TestTrackedViewOmitsIdentity(t *testing.T) {
	request := AidRequest{
		RequesterName:  "Amina",
		Phone:          "0612345678",
		TrackingCode:   "AR-TEST123",
		Category:       CategoryWater,
		Status:         RequestInProgress,
		City:           "Nador",
		InspectorNotes: "call back tomorrow",
	}

	out, err := json.Marshal(request.Tracked())
	assert.NoError(t, err)
	assert.NotContains(t, string(out), "Amina")
	assert.NotContains(t, string(out), "0612345678")
	assert.NotContains(t, string(out), "call back")
	assert.Contains(t, string(out), "AR-TEST123")
}
