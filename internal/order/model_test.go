package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanMove(t *testing.T) {
	allowed := [][2]Status{
		{StatusPlaced, StatusPaid},
		{StatusPlaced, StatusCancelled},
		{StatusPaid, StatusShipped},
		{StatusPaid, StatusCancelled},
		{StatusShipped, StatusDelivered},
	}
	for _, tr := range allowed {
		assert.True(t, CanMove(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}

	denied := [][2]Status{
		{StatusPaid, StatusPlaced},
		{StatusShipped, StatusCancelled},
		{StatusDelivered, StatusShipped},
		{StatusCancelled, StatusPaid},
		{StatusPlaced, StatusDelivered},
	}
	for _, tr := range denied {
		assert.False(t, CanMove(tr[0], tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusShipped.Valid())
	assert.False(t, Status("lost").Valid())
}
