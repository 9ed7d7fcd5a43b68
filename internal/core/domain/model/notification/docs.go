// Package notification describes outbound chat messages and the outbox
// records that carry them from a committed transaction to the messaging
// provider.
//
// A Message is provider-neutral structured content: plain text, a body with
// up to three reply buttons, or a body with a list of selectable rows. The
// limits mirror what WhatsApp accepts, so a Message that validates here is
// never rejected for its shape by the provider.
//
// A Notification is written in the same transaction as the state change that
// triggers it and is delivered afterwards by a background dispatcher. Each
// failed attempt is recorded; after the attempt budget is spent the
// notification is parked as failed and no longer retried.
package notification
