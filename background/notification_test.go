package background

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aidlink-inc/aidlink-api/external/onesignal"
)

type recordingPushClient struct {
	requests []*onesignal.NotificationRequest
}

func (r *recordingPushClient) SendNotification(ctx context.Context, notification *onesignal.NotificationRequest) error {
	r.requests = append(r.requests, notification)
	return nil
}

func accountIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("account-%d", i)
	}
	return ids
}

func TestNotifyAccountsByTemplateBatches(t *testing.T) {
	rec := &recordingPushClient{}
	center := &OnesignalNotificationCenter{appID: "app", client: rec}

	err := center.NotifyAccountsByTemplate(accountIDs(250), "template-1", nil)
	assert.NoError(t, err)

	assert.Len(t, rec.requests, 3)
	// n accounts need n tag filters plus n-1 OR separators
	assert.Len(t, rec.requests[0].Filters, 199)
	assert.Len(t, rec.requests[1].Filters, 199)
	assert.Len(t, rec.requests[2].Filters, 99)
}

// an exact multiple of the batch size must not produce a trailing
// filterless request, that would push to every subscriber
func TestNotifyAccountsByTemplateExactBatch(t *testing.T) {
	rec := &recordingPushClient{}
	center := &OnesignalNotificationCenter{appID: "app", client: rec}

	err := center.NotifyAccountsByTemplate(accountIDs(100), "template-1", nil)
	assert.NoError(t, err)

	assert.Len(t, rec.requests, 1)
	for _, req := range rec.requests {
		assert.NotEmpty(t, req.Filters)
	}
}

func TestNotifyAccountsByTemplateNoAccounts(t *testing.T) {
	rec := &recordingPushClient{}
	center := &OnesignalNotificationCenter{appID: "app", client: rec}

	err := center.NotifyAccountsByTemplate(nil, "template-1", nil)
	assert.NoError(t, err)
	assert.Empty(t, rec.requests)
}
