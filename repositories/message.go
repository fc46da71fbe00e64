//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"marketchat/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	messageFieldID protowire.Number = iota + 1
	messageFieldConversation
	messageFieldSender
	messageFieldContent
	messageFieldOriginalLength
	messageFieldRedacted
	messageFieldAt
)

type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	GetMessages(conversation domain.ConversationID, cursor *string) ([]domain.Message, *string, error)
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) MessageRepository {
	return MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

// StoreMessage persists a message in BadgerDB.
// The key is formatted as "msg:{conversation}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two messages
//     arrive at the same nanosecond.
//
// The conversation is base64 encoded since conversation IDs contain colons.
func (m MessageRepository) StoreMessage(message domain.Message) error {
	key := fmt.Sprintf("%s%019d:%s",
		messagePrefix(message.Conversation),
		message.At.UnixNano(),
		message.ID,
	)
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), encodeMessage(message))
	})
}

// GetMessages retrieves messages of a conversation, newest first, using a reverse prefix scan.
// The returned cursor is the key suffix of the last message read and can be passed back
// to fetch the next (older) page. It stops once the configured limitMessages is reached.
func (m MessageRepository) GetMessages(conversation domain.ConversationID, cursor *string) ([]domain.Message, *string, error) {
	var byteMessages [][]byte
	var lastKey string
	err := m.db.View(func(txn *badger.Txn) error {
		prefixStr := messagePrefix(conversation)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Start after the newest possible timestamp and walk backwards.
			seekKey = append([]byte(prefixStr), []byte("9999999999999999999")...)
		default:
			seekKey = append([]byte(prefixStr), []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) && string(it.Item().Key()[prefixLen:]) == *cursor {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if m.limitMessages != nil && len(byteMessages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", *m.limitMessages))
				break
			}
			item := it.Item()
			lastKey = string(item.Key()[prefixLen:])
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			byteMessages = append(byteMessages, value)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	messages := make([]domain.Message, 0, len(byteMessages))
	for _, b := range byteMessages {
		message, err := decodeMessage(b)
		if err != nil {
			return nil, nil, err
		}
		messages = append(messages, message)
	}
	if len(messages) == 0 {
		return messages, nil, nil
	}
	return messages, &lastKey, nil
}

func messagePrefix(conversation domain.ConversationID) string {
	return fmt.Sprintf("msg:%s:", base64.RawURLEncoding.EncodeToString([]byte(conversation)))
}

func encodeMessage(message domain.Message) []byte {
	var w recordWriter
	w.string(messageFieldID, message.ID.String())
	w.string(messageFieldConversation, message.Conversation.String())
	w.string(messageFieldSender, message.SenderID)
	w.string(messageFieldContent, message.Content)
	w.varint(messageFieldOriginalLength, uint64(message.OriginalLength))
	w.bool(messageFieldRedacted, message.Redacted)
	w.varint(messageFieldAt, uint64(message.At.UnixNano()))
	return w.bytes()
}

func decodeMessage(b []byte) (domain.Message, error) {
	r, err := decodeRecord(b)
	if err != nil {
		return domain.Message{}, err
	}
	id, err := uuid.Parse(r.str(messageFieldID))
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:             id,
		Conversation:   domain.ConversationID(r.str(messageFieldConversation)),
		SenderID:       r.str(messageFieldSender),
		Content:        r.str(messageFieldContent),
		OriginalLength: int(r.uint(messageFieldOriginalLength)),
		Redacted:       r.bool(messageFieldRedacted),
		At:             time.Unix(0, int64(r.uint(messageFieldAt))).UTC(),
	}, nil
}
