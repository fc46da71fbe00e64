package server

import (
	"context"
	"log/slog"
	"time"

	"marketchat/auth"
	"marketchat/domain"
	"marketchat/errors"
	pb "marketchat/proto/marketchat"
	"marketchat/repositories"
	"marketchat/services"

	"github.com/samber/lo"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type MessagingServer struct {
	pb.UnimplementedMessagingServiceServer
	messagingService services.IMessagingService
	log              *slog.Logger
}

func NewMessagingServer(log *slog.Logger, messagingService services.IMessagingService) *MessagingServer {
	return &MessagingServer{messagingService: messagingService, log: log}
}

// SendMessage stores the moderated message and returns it as participants will see it.
// The sender must be the buyer or the seller of the conversation.
func (s *MessagingServer) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.MessageResponse, error) {
	userID, err := participant(ctx, req.BuyerID, req.SellerID)
	if err != nil {
		return nil, err
	}
	message, err := s.messagingService.SendMessage(ctx, domain.SendMessageCommand{
		Conversation: domain.NewConversationID(req.AdID, req.BuyerID, req.SellerID),
		SenderID:     userID,
		Content:      req.Content,
		At:           time.Now().UTC(),
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return toMessageResponse(message), nil
}

func (s *MessagingServer) GetMessages(ctx context.Context, req *pb.GetMessagesRequest) (*pb.GetMessagesResponse, error) {
	if _, err := participant(ctx, req.BuyerID, req.SellerID); err != nil {
		return nil, err
	}
	messages, cursor, err := s.messagingService.GetMessages(domain.GetMessagesCommand{
		Conversation: domain.NewConversationID(req.AdID, req.BuyerID, req.SellerID),
		Cursor:       req.Cursor,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.GetMessagesResponse{
		Messages: lo.Map(messages, func(m domain.Message, _ int) *pb.MessageResponse { return toMessageResponse(m) }),
		Cursor:   cursor,
	}, nil
}

func (s *MessagingServer) CheckDraft(_ context.Context, req *pb.CheckDraftRequest) (*pb.CheckDraftResponse, error) {
	check := s.messagingService.CheckDraft(req.Text)
	return &pb.CheckDraftResponse{Filtered: check.Filtered, Forbidden: check.Forbidden, Word: check.Word}, nil
}

func (s *MessagingServer) SearchMessages(ctx context.Context, req *pb.SearchMessagesRequest) (*pb.SearchMessagesResponse, error) {
	hits, err := s.messagingService.SearchMessages(ctx, domain.SearchMessagesCommand{
		Conversation: domain.NewConversationID(req.AdID, req.BuyerID, req.SellerID),
		Terms:        req.Terms,
		Limit:        req.Limit,
	})
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.SearchMessagesResponse{
		Hits: lo.Map(hits, func(h repositories.SearchHit, _ int) *pb.SearchHit {
			return &pb.SearchHit{MessageID: h.MessageID, Author: h.SenderID, Content: h.Content, CreatedAt: h.At, Score: h.Score}
		}),
	}, nil
}

func (s *MessagingServer) AddBlockedWords(ctx context.Context, req *pb.AddBlockedWordsRequest) (*pb.AddBlockedWordsResponse, error) {
	actor, _ := auth.UserID(ctx)
	if err := s.messagingService.AddBlockedWords(actor, req.Words); err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return &pb.AddBlockedWordsResponse{Added: len(req.Words)}, nil
}

func participant(ctx context.Context, buyerID, sellerID string) (string, error) {
	userID, ok := auth.UserID(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing user")
	}
	if userID != buyerID && userID != sellerID {
		return "", errors.MapToGRPCError(errors.ErrForbidden)
	}
	return userID, nil
}

func toMessageResponse(m domain.Message) *pb.MessageResponse {
	return &pb.MessageResponse{
		MessageID:      m.ID.String(),
		Conversation:   m.Conversation.String(),
		Author:         m.SenderID,
		Content:        m.Content,
		OriginalLength: m.OriginalLength,
		Redacted:       m.Redacted,
		CreatedAt:      m.At,
	}
}
