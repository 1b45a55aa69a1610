// Copyright (c) 2025 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/golang/glog"
)

const (
	MessageAlertsUnavailable = "Unable to fetch alerts."
	MessageNoAlerts          = "No alerts found."
	MessageNoActiveAlerts    = "No active alerts found."
)

// AlertProperties are the fields of an NWS alert feature used for display.
// Nil means the field was absent or null.
type AlertProperties struct {
	Event       *string `json:"event"`
	AreaDesc    *string `json:"areaDesc"`
	Severity    *string `json:"severity"`
	Description *string `json:"description"`
	Instruction *string `json:"instruction"`
}

type AlertFeature struct {
	Properties AlertProperties `json:"properties"`
}

// AlertCollection is the decoded alerts response.
// HasFeatures is false when the response carried no features key.
// A null features value counts as present and empty.
type AlertCollection struct {
	HasFeatures bool
	Features    []AlertFeature
}

// FormatAlert renders a feature as a text block. Missing fields get placeholders.
func FormatAlert(feature AlertFeature) string {
	props := feature.Properties
	return fmt.Sprintf(
		"\nEvent: %s\nArea: %s\nSeverity: %s\nDescription: %s\nInstructions: %s\n",
		valueOrDefault(props.Event, "Unknown"),
		valueOrDefault(props.AreaDesc, "Unknown"),
		valueOrDefault(props.Severity, "Unknown"),
		valueOrDefault(props.Description, "No description available"),
		valueOrDefault(props.Instruction, "No specific instructions provided"),
	)
}

func valueOrDefault(value *string, defaultValue string) string {
	if value == nil {
		return defaultValue
	}
	return *value
}

// Alerts fetches the active alerts for a state or area code.
func (w *Weather) Alerts(ctx context.Context, state string) (*AlertCollection, error) {
	alertsURL := fmt.Sprintf("%s/alerts/active/area/%s", strings.TrimSuffix(w.nwsBaseURL, "/"), url.PathEscape(state))
	var response map[string]json.RawMessage
	if err := w.fetcher.FetchJSON(ctx, alertsURL, &response); err != nil {
		return nil, err
	}
	if len(response) == 0 {
		return nil, newShapeError(alertsURL, "empty alerts response")
	}
	rawFeatures, ok := response["features"]
	if !ok {
		return &AlertCollection{}, nil
	}
	var features []AlertFeature
	if err := json.Unmarshal(rawFeatures, &features); err != nil {
		return nil, newShapeError(alertsURL, "features is not a list of alerts: %v", err)
	}
	return &AlertCollection{
		HasFeatures: true,
		Features:    features,
	}, nil
}

// GetAlerts returns the formatted alerts or a fixed message explaining why there are none.
func (w *Weather) GetAlerts(ctx context.Context, state string) (string, error) {
	collection, err := w.Alerts(ctx, state)
	if err != nil {
		glog.Warningf("get alerts for %s failed: %v", state, err)
		return MessageAlertsUnavailable, err
	}
	if !collection.HasFeatures {
		return MessageNoAlerts, nil
	}
	if len(collection.Features) == 0 {
		return MessageNoActiveAlerts, nil
	}
	blocks := make([]string, 0, len(collection.Features))
	for _, feature := range collection.Features {
		blocks = append(blocks, FormatAlert(feature))
	}
	return strings.Join(blocks, BlockSeparator), nil
}
