//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_search_index.go -package=mocks
package repositories

import (
	"context"
	"log/slog"
	"time"

	"marketchat/domain"

	"github.com/blugelabs/bluge"
)

const (
	searchFieldConversation = "conversation"
	searchFieldContent      = "content"
	searchFieldSender       = "sender"
	searchFieldAt           = "at"
	defaultSearchLimit      = 20
)

type ISearchIndex interface {
	Index(message domain.Message) error
	Search(ctx context.Context, cmd domain.SearchMessagesCommand) ([]SearchHit, error)
}

type SearchHit struct {
	MessageID string
	SenderID  string
	Content   string
	At        time.Time
	Score     float64
}

// SearchIndex is the full-text index of moderated messages used to review conversations.
// Only redacted content is indexed.
type SearchIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewSearchIndex(writer *bluge.Writer, log *slog.Logger) *SearchIndex {
	return &SearchIndex{writer: writer, log: log}
}

func (s *SearchIndex) Index(message domain.Message) error {
	doc := bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewKeywordField(searchFieldConversation, message.Conversation.String()).StoreValue()).
		AddField(bluge.NewKeywordField(searchFieldSender, message.SenderID).StoreValue()).
		AddField(bluge.NewKeywordField(searchFieldAt, message.At.Format(time.RFC3339Nano)).StoreValue()).
		AddField(bluge.NewTextField(searchFieldContent, message.Content).StoreValue())
	return s.writer.Update(doc.ID(), doc)
}

// Search runs a match query on the content, restricted to one conversation.
func (s *SearchIndex) Search(ctx context.Context, cmd domain.SearchMessagesCommand) ([]SearchHit, error) {
	limit := cmd.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	reader, err := s.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	query := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(cmd.Terms).SetField(searchFieldContent)).
		AddMust(bluge.NewTermQuery(cmd.Conversation.String()).SetField(searchFieldConversation))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var hits []SearchHit
	match, err := iterator.Next()
	for err == nil && match != nil {
		hit := SearchHit{Score: match.Score}
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.MessageID = string(value)
			case searchFieldSender:
				hit.SenderID = string(value)
			case searchFieldContent:
				hit.Content = string(value)
			case searchFieldAt:
				if at, parseErr := time.Parse(time.RFC3339Nano, string(value)); parseErr == nil {
					hit.At = at
				}
			}
			return true
		})
		if visitErr != nil {
			return nil, visitErr
		}
		hits = append(hits, hit)
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, err
	}
	s.log.Debug("Search done", "conversation_id", cmd.Conversation, "hits", len(hits))
	return hits, nil
}
