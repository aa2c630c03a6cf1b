package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	logPrefix      = "sms"
	defaultTimeout = 15 * time.Second
)

// Sender - interface to deliver text messages
type Sender interface {
	Send(ctx context.Context, phone, message string) error
}

type gatewaySender struct {
	client   *http.Client
	endpoint string
	token    string
}

// New - new Sender backed by the configured HTTP sms gateway
func New() Sender {
	return &gatewaySender{
		client: &http.Client{
			Timeout: defaultTimeout,
		},
		endpoint: viper.GetString("sms.endpoint"),
		token:    viper.GetString("sms.token"),
	}
}

func (g *gatewaySender) Send(ctx context.Context, phone, message string) error {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"phone":  phone,
	}).Info("deliver sms")

	body, err := json.Marshal(map[string]string{
		"to":   phone,
		"text": message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.endpoint+"/messages", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.token)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("sms gateway returns status: %d", resp.StatusCode)
	}

	return nil
}
