package pubsub

import "foodbridge/internal/domain/service"

// eventAttributes are the message attributes subscriptions can filter on.
func eventAttributes(event *service.DonationEvent) map[string]string {
	attributes := map[string]string{
		"event_type":  event.EventType,
		"donation_id": event.DonationID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
