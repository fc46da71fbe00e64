package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConversationID(t *testing.T) {
	req := require.New(t)
	id := NewConversationID("ad-42", "buyer-1", "seller-9")
	req.Equal(ConversationID("ad-42:buyer-1:seller-9"), id)
	req.Equal("ad-42:buyer-1:seller-9", id.String())
}
