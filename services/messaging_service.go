package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"marketchat/domain"
	"marketchat/domain/event"
	"marketchat/errors"
	"marketchat/moderation"
	"marketchat/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IMessagingService interface {
	SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error)
	GetMessages(cmd domain.GetMessagesCommand) ([]domain.Message, *string, error)
	SearchMessages(ctx context.Context, cmd domain.SearchMessagesCommand) ([]repositories.SearchHit, error)
	CheckDraft(text string) domain.DraftCheck
	AddBlockedWords(actor string, words []string) error
}

type MessagingService struct {
	log                 *slog.Logger
	policy              moderation.Policy
	moderator           atomic.Pointer[moderation.Moderator]
	censoredChar        rune
	messageRepository   repositories.IMessageRepository
	blocklistRepository repositories.IBlocklistRepository
	index               repositories.ISearchIndex
	events              chan<- event.Event
	validate            *validator.Validate
}

func NewMessagingService(
	log *slog.Logger,
	policy moderation.Policy,
	moderator *moderation.Moderator,
	censoredChar rune,
	messageRepository repositories.IMessageRepository,
	blocklistRepository repositories.IBlocklistRepository,
	index repositories.ISearchIndex,
	events chan<- event.Event,
) *MessagingService {
	s := &MessagingService{
		log:                 log,
		policy:              policy,
		censoredChar:        censoredChar,
		messageRepository:   messageRepository,
		blocklistRepository: blocklistRepository,
		index:               index,
		events:              events,
		validate:            validator.New(),
	}
	s.moderator.Store(moderator)
	return s
}

// SendMessage runs the configured policy, then the blocklist, and stores the result.
// A rejected message returns an errors.RejectedError holding the text to show the sender.
func (s *MessagingService) SendMessage(ctx context.Context, cmd domain.SendMessageCommand) (domain.Message, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return domain.Message{}, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	if err := ctx.Err(); err != nil {
		return domain.Message{}, err
	}

	trimmed := strings.TrimSpace(cmd.Content)
	if trimmed == "" {
		return domain.Message{}, errors.ErrEmptyContent
	}
	length := utf8.RuneCountInString(trimmed)
	if length > moderation.MaxMessageLength {
		return domain.Message{}, errors.ErrContentTooLong
	}

	outcome := s.policy.Apply(trimmed)
	if !outcome.Accepted {
		s.log.Debug("Message rejected", "conversation_id", cmd.Conversation, "policy", s.policy.Name())
		publish(s.log, s.events, event.New(event.MessageRejectedType, event.MessageRejected{
			Conversation: cmd.Conversation.String(),
			SenderID:     cmd.SenderID,
			Policy:       string(s.policy.Name()),
			Reason:       outcome.Reason,
			At:           time.Now().UTC(),
		}))
		return domain.Message{}, errors.RejectedError{Reason: outcome.Reason}
	}
	if outcome.Content == "" {
		return domain.Message{}, errors.ErrEmptyContent
	}

	content, words := s.moderator.Load().Censor(outcome.Content)
	for _, word := range words {
		publish(s.log, s.events, event.New(event.CensorshipHitType, event.CensorshipHit{
			Conversation: cmd.Conversation.String(),
			Word:         word,
		}))
	}

	at := cmd.At
	if at.IsZero() {
		at = time.Now().UTC()
	}
	message := domain.Message{
		ID:             uuid.New(),
		Conversation:   cmd.Conversation,
		SenderID:       cmd.SenderID,
		Content:        content,
		OriginalLength: length,
		Redacted:       content != trimmed,
		At:             at,
	}

	if err := s.messageRepository.StoreMessage(message); err != nil {
		return domain.Message{}, fmt.Errorf("store message: %w", err)
	}
	// The index only serves moderators, a failure must not lose the message.
	if err := s.index.Index(message); err != nil {
		s.log.Warn("Unable to index message", "message_id", message.ID, "error", err)
	}

	publish(s.log, s.events, event.New(event.MessageSanitizedType, event.MessageSanitized{
		MessageID:    message.ID,
		Conversation: message.Conversation.String(),
		SenderID:     message.SenderID,
		Content:      message.Content,
		RuleHits: lo.SliceToMap(outcome.Hits, func(h moderation.Hit) (string, int) {
			return string(h.Rule), h.Count
		}),
		At: message.At,
	}))
	return message, nil
}

func (s *MessagingService) GetMessages(cmd domain.GetMessagesCommand) ([]domain.Message, *string, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	return s.messageRepository.GetMessages(cmd.Conversation, cmd.Cursor)
}

func (s *MessagingService) SearchMessages(ctx context.Context, cmd domain.SearchMessagesCommand) ([]repositories.SearchHit, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	return s.index.Search(ctx, cmd)
}

// CheckDraft is the keystroke-level check, it never touches storage.
func (s *MessagingService) CheckDraft(text string) domain.DraftCheck {
	word, forbidden := moderation.ForbiddenWord(text)
	return domain.DraftCheck{
		Filtered:  moderation.FilterInputRealTime(text),
		Forbidden: forbidden,
		Word:      word,
	}
}

// AddBlockedWords persists the words and swaps in a moderator built from the whole list.
// Messages being sent concurrently use either the old or the new list, never a mix.
func (s *MessagingService) AddBlockedWords(actor string, words []string) error {
	words = lo.Compact(lo.Map(words, func(w string, _ int) string { return strings.TrimSpace(w) }))
	if len(words) == 0 {
		return fmt.Errorf("%w: no word to block", errors.ErrInvalidCommand)
	}
	if err := s.blocklistRepository.Add(words...); err != nil {
		return err
	}
	all, err := s.blocklistRepository.All()
	if err != nil {
		return err
	}
	moderator, err := moderation.NewModerator(all, s.censoredChar, s.log)
	if err != nil {
		return err
	}
	s.moderator.Store(moderator)

	s.log.Info("Blocklist updated", "actor", actor, "added", len(words), "total", len(all))
	publish(s.log, s.events, event.New(event.SecurityType, event.Security{
		Kind:    event.BlocklistUpdate,
		Subject: actor,
		Detail:  strings.Join(words, ","),
	}))
	return nil
}
