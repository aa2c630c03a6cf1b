package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	logPrefix = "onesignal"
	endpoint  = "https://onesignal.com/api/v1"
)

// NotificationRequest is the payload of a push delivery
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"existing_android_channel_id,omitempty"`
}

type OneSignalClient struct {
	client *http.Client
	apiKey string
}

func NewClient(client *http.Client) *OneSignalClient {
	return &OneSignalClient{
		client: client,
		apiKey: viper.GetString("onesignal.key"),
	}
}

// SendNotification submits one push request. Delivery errors from
// OneSignal come back as a plain error with the response body.
func (c *OneSignalClient) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint+"/notifications", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var errorBody map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&errorBody); err == nil {
			log.WithFields(log.Fields{
				"prefix": logPrefix,
				"resp":   errorBody,
			}).Error("send notification")
		}
		return fmt.Errorf("onesignal returns status: %d", resp.StatusCode)
	}

	return nil
}
