package background

import (
	"context"

	"github.com/aidlink-inc/aidlink-api/external/onesignal"
)

type NotificationCenter interface {
	NotifyAccountByText(accountID string, headings, contents map[string]string, data map[string]interface{}) error
	NotifyAccountsByTemplate(accountIDs []string, templateID string, data map[string]interface{}) error
}

// pushClient is the slice of the OneSignal client the center needs
type pushClient interface {
	SendNotification(ctx context.Context, notification *onesignal.NotificationRequest) error
}

type OnesignalNotificationCenter struct {
	appID  string
	client pushClient
}

func NewOnesignalNotificationCenter(appID string, client *onesignal.OneSignalClient) *OnesignalNotificationCenter {
	return &OnesignalNotificationCenter{
		appID:  appID,
		client: client,
	}
}

func (o *OnesignalNotificationCenter) NotifyAccountByText(accountID string, headings, contents map[string]string, data map[string]interface{}) error {
	filters := []map[string]string{
		{
			"field":    "tag",
			"key":      "account_id",
			"relation": "=",
			"value":    accountID,
		},
	}

	req := &onesignal.NotificationRequest{
		AppID:          o.appID,
		Headings:       headings,
		Contents:       contents,
		Filters:        filters,
		Data:           data,
		LocalChannelID: "important_alert",
	}
	return o.client.SendNotification(context.Background(), req)
}

// notifyBatchSize is how many account tags go into one push request.
// With the OR separators in between that stays under the 200-filter
// OneSignal limit.
const notifyBatchSize = 100

// NotifyAccountsByTemplate fans a templated push out to the given
// accounts in batches. An empty account list sends nothing: a push
// without filters would target every subscriber.
func (o *OnesignalNotificationCenter) NotifyAccountsByTemplate(accountIDs []string, templateID string, data map[string]interface{}) error {
	for start := 0; start < len(accountIDs); start += notifyBatchSize {
		end := start + notifyBatchSize
		if end > len(accountIDs) {
			end = len(accountIDs)
		}

		filters := make([]map[string]string, 0, 2*(end-start))
		for i, a := range accountIDs[start:end] {
			if i > 0 {
				filters = append(filters, map[string]string{"operator": "OR"})
			}
			filters = append(filters, map[string]string{
				"field":    "tag",
				"key":      "account_id",
				"relation": "=",
				"value":    a,
			})
		}

		req := &onesignal.NotificationRequest{
			AppID:          o.appID,
			TemplateID:     templateID,
			Filters:        filters,
			Data:           data,
			LocalChannelID: "important_alert",
		}
		if err := o.client.SendNotification(context.Background(), req); err != nil {
			return err
		}
	}
	return nil
}
