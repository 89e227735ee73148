// Package queue defines message payloads exchanged over the message broker.
package queue

// ContactQueueName is the durable queue carrying contact submissions.
const ContactQueueName = "contact.received"

// ContactReceivedEvent is published when a visitor submits the contact form.
// It carries the full submission so downstream consumers can notify support
// staff without querying the primary store.
type ContactReceivedEvent struct {
	ContactID  int    `json:"contact_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	ReceivedAt string `json:"received_at"`
}
