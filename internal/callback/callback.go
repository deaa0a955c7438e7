package callback

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/calldoc/transcription-service/internal/types"
)

// deliveryTimeout bounds one callback POST.
const deliveryTimeout = 30 * time.Second

// Deliverer POSTs completed results to caller-supplied callback URLs.
// Delivery is best-effort: failures are logged, never retried, and never
// surfaced to the caller.
type Deliverer struct {
	client *http.Client
}

// NewDeliverer creates a deliverer with a bounded request timeout.
func NewDeliverer() *Deliverer {
	return &Deliverer{client: &http.Client{Timeout: deliveryTimeout}}
}

// Deliver POSTs the result as JSON to callbackURL. It never returns an
// error; any failure is diagnostic only.
func (d *Deliverer) Deliver(ctx context.Context, callbackURL string, result *types.TranscriptionResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		logrus.Errorf("Callback to %s failed: encode result: %v", callbackURL, err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callbackURL, bytes.NewReader(payload))
	if err != nil {
		logrus.Errorf("Callback to %s failed: %v", callbackURL, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		logrus.Errorf("Callback to %s failed: %v", callbackURL, err)
		return
	}
	defer resp.Body.Close()

	logrus.Infof("Callback to %s returned status %d", callbackURL, resp.StatusCode)
}
