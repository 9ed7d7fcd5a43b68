package notification

import (
	"fmt"
	"strconv"
	"strings"

	"pharmacy/internal/core/domain/model/kernel"
)

const ratingReplyPrefix = "rate"

// FeedbackRequest asks the customer to rate the delivery of orderID. Each
// row's reply ID encodes the order and the rating, see ParseRatingReply.
func FeedbackRequest(orderID kernel.ID) Message {
	labels := []string{"Very poor", "Poor", "Okay", "Good", "Excellent"}
	rows := make([]Row, 0, len(labels))
	for i, label := range labels {
		rating := i + 1
		rows = append(rows, Row{
			ID:    RatingReplyID(orderID, rating),
			Title: fmt.Sprintf("%d - %s", rating, label),
		})
	}
	return List(
		fmt.Sprintf("Your order #%s has been delivered. How was the delivery?", orderID),
		"Rate delivery",
		Section{Title: "Rating", Rows: rows},
	)
}

// RatingReplyID encodes a rating reply, e.g. "rate:42:5".
func RatingReplyID(orderID kernel.ID, rating int) string {
	return fmt.Sprintf("%s:%s:%d", ratingReplyPrefix, orderID, rating)
}

// ParseRatingReply decodes a reply ID produced by RatingReplyID.
func ParseRatingReply(replyID string) (kernel.ID, int, bool) {
	parts := strings.Split(replyID, ":")
	if len(parts) != 3 || parts[0] != ratingReplyPrefix {
		return 0, 0, false
	}
	orderID, err := kernel.ParseID(parts[1])
	if err != nil {
		return 0, 0, false
	}
	rating, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, false
	}
	return orderID, rating, true
}
