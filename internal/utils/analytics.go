package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// EventSink is the part of posthog.Client the wrapper uses.
type EventSink interface {
	Enqueue(msg posthog.Message) error
	Close() error
}

// AnalyticsClient wraps a PostHog client and turns every call into a no-op when analytics is disabled.
type AnalyticsClient struct {
	sink   EventSink
	logger *slog.Logger
}

// NewAnalyticsClient builds a PostHog-backed client. An empty apiKey returns a disabled client.
func NewAnalyticsClient(apiKey, endpoint string, logger *slog.Logger) *AnalyticsClient {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, usage analytics disabled.")
		return &AnalyticsClient{}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to initialize posthog client, usage analytics disabled", slog.String("error", err.Error()))
		return &AnalyticsClient{}
	}
	logger.Info("Posthog client initialized", slog.String("endpoint", endpoint))
	return WrapEventSink(client, logger)
}

// WrapEventSink builds a client around an existing sink.
func WrapEventSink(sink EventSink, logger *slog.Logger) *AnalyticsClient {
	return &AnalyticsClient{sink: sink, logger: logger}
}

func (a *AnalyticsClient) IsEnabled() bool {
	return a != nil && a.sink != nil
}

// Enqueue queues a capture event. Delivery happens in the background; failures are only logged.
func (a *AnalyticsClient) Enqueue(distinctID, event string, properties map[string]any) {
	if !a.IsEnabled() {
		return
	}
	err := a.sink.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && a.logger != nil {
		a.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes queued events.
func (a *AnalyticsClient) Close() {
	if !a.IsEnabled() {
		return
	}
	if err := a.sink.Close(); err != nil && a.logger != nil {
		a.logger.Warn("Failed to close analytics client", slog.String("error", err.Error()))
	}
}
