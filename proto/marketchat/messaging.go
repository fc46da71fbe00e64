package marketchat

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	MessagingService_SendMessage_FullMethodName     = "/marketchat.v1.MessagingService/SendMessage"
	MessagingService_GetMessages_FullMethodName     = "/marketchat.v1.MessagingService/GetMessages"
	MessagingService_CheckDraft_FullMethodName      = "/marketchat.v1.MessagingService/CheckDraft"
	MessagingService_SearchMessages_FullMethodName  = "/marketchat.v1.MessagingService/SearchMessages"
	MessagingService_AddBlockedWords_FullMethodName = "/marketchat.v1.MessagingService/AddBlockedWords"
)

type SendMessageRequest struct {
	AdID     string `json:"ad_id"`
	BuyerID  string `json:"buyer_id"`
	SellerID string `json:"seller_id"`
	Content  string `json:"content"`
}

type MessageResponse struct {
	MessageID      string    `json:"message_id"`
	Conversation   string    `json:"conversation"`
	Author         string    `json:"author"`
	Content        string    `json:"content"`
	OriginalLength int       `json:"original_length"`
	Redacted       bool      `json:"redacted"`
	CreatedAt      time.Time `json:"created_at"`
}

type GetMessagesRequest struct {
	AdID     string  `json:"ad_id"`
	BuyerID  string  `json:"buyer_id"`
	SellerID string  `json:"seller_id"`
	Cursor   *string `json:"cursor,omitempty"`
}

type GetMessagesResponse struct {
	Messages []*MessageResponse `json:"messages"`
	Cursor   *string            `json:"cursor,omitempty"`
}

type CheckDraftRequest struct {
	Text string `json:"text"`
}

type CheckDraftResponse struct {
	Filtered  string `json:"filtered"`
	Forbidden bool   `json:"forbidden"`
	Word      string `json:"word,omitempty"`
}

type SearchMessagesRequest struct {
	AdID     string `json:"ad_id"`
	BuyerID  string `json:"buyer_id"`
	SellerID string `json:"seller_id"`
	Terms    string `json:"terms"`
	Limit    int    `json:"limit"`
}

type SearchHit struct {
	MessageID string    `json:"message_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Score     float64   `json:"score"`
}

type SearchMessagesResponse struct {
	Hits []*SearchHit `json:"hits"`
}

type AddBlockedWordsRequest struct {
	Words []string `json:"words"`
}

type AddBlockedWordsResponse struct {
	Added int `json:"added"`
}

// MessagingServiceClient is the client API for MessagingService.
type MessagingServiceClient interface {
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*MessageResponse, error)
	GetMessages(ctx context.Context, in *GetMessagesRequest, opts ...grpc.CallOption) (*GetMessagesResponse, error)
	CheckDraft(ctx context.Context, in *CheckDraftRequest, opts ...grpc.CallOption) (*CheckDraftResponse, error)
	SearchMessages(ctx context.Context, in *SearchMessagesRequest, opts ...grpc.CallOption) (*SearchMessagesResponse, error)
	AddBlockedWords(ctx context.Context, in *AddBlockedWordsRequest, opts ...grpc.CallOption) (*AddBlockedWordsResponse, error)
}

type messagingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMessagingServiceClient(cc grpc.ClientConnInterface) MessagingServiceClient {
	return &messagingServiceClient{cc}
}

func (c *messagingServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	out := new(MessageResponse)
	if err := c.cc.Invoke(ctx, MessagingService_SendMessage_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messagingServiceClient) GetMessages(ctx context.Context, in *GetMessagesRequest, opts ...grpc.CallOption) (*GetMessagesResponse, error) {
	out := new(GetMessagesResponse)
	if err := c.cc.Invoke(ctx, MessagingService_GetMessages_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messagingServiceClient) CheckDraft(ctx context.Context, in *CheckDraftRequest, opts ...grpc.CallOption) (*CheckDraftResponse, error) {
	out := new(CheckDraftResponse)
	if err := c.cc.Invoke(ctx, MessagingService_CheckDraft_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messagingServiceClient) SearchMessages(ctx context.Context, in *SearchMessagesRequest, opts ...grpc.CallOption) (*SearchMessagesResponse, error) {
	out := new(SearchMessagesResponse)
	if err := c.cc.Invoke(ctx, MessagingService_SearchMessages_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *messagingServiceClient) AddBlockedWords(ctx context.Context, in *AddBlockedWordsRequest, opts ...grpc.CallOption) (*AddBlockedWordsResponse, error) {
	out := new(AddBlockedWordsResponse)
	if err := c.cc.Invoke(ctx, MessagingService_AddBlockedWords_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// MessagingServiceServer is the server API for MessagingService.
type MessagingServiceServer interface {
	SendMessage(context.Context, *SendMessageRequest) (*MessageResponse, error)
	GetMessages(context.Context, *GetMessagesRequest) (*GetMessagesResponse, error)
	CheckDraft(context.Context, *CheckDraftRequest) (*CheckDraftResponse, error)
	SearchMessages(context.Context, *SearchMessagesRequest) (*SearchMessagesResponse, error)
	AddBlockedWords(context.Context, *AddBlockedWordsRequest) (*AddBlockedWordsResponse, error)
}

// UnimplementedMessagingServiceServer can be embedded to have forward compatible implementations.
type UnimplementedMessagingServiceServer struct{}

func (UnimplementedMessagingServiceServer) SendMessage(context.Context, *SendMessageRequest) (*MessageResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SendMessage not implemented")
}
func (UnimplementedMessagingServiceServer) GetMessages(context.Context, *GetMessagesRequest) (*GetMessagesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetMessages not implemented")
}
func (UnimplementedMessagingServiceServer) CheckDraft(context.Context, *CheckDraftRequest) (*CheckDraftResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckDraft not implemented")
}
func (UnimplementedMessagingServiceServer) SearchMessages(context.Context, *SearchMessagesRequest) (*SearchMessagesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchMessages not implemented")
}
func (UnimplementedMessagingServiceServer) AddBlockedWords(context.Context, *AddBlockedWordsRequest) (*AddBlockedWordsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AddBlockedWords not implemented")
}

func RegisterMessagingServiceServer(s grpc.ServiceRegistrar, srv MessagingServiceServer) {
	s.RegisterService(&MessagingService_ServiceDesc, srv)
}

func _MessagingService_SendMessage_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SendMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessagingServiceServer).SendMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessagingService_SendMessage_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MessagingServiceServer).SendMessage(ctx, req.(*SendMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MessagingService_GetMessages_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetMessagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessagingServiceServer).GetMessages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessagingService_GetMessages_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MessagingServiceServer).GetMessages(ctx, req.(*GetMessagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MessagingService_CheckDraft_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CheckDraftRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessagingServiceServer).CheckDraft(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessagingService_CheckDraft_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MessagingServiceServer).CheckDraft(ctx, req.(*CheckDraftRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MessagingService_SearchMessages_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SearchMessagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessagingServiceServer).SearchMessages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessagingService_SearchMessages_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MessagingServiceServer).SearchMessages(ctx, req.(*SearchMessagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MessagingService_AddBlockedWords_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AddBlockedWordsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MessagingServiceServer).AddBlockedWords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MessagingService_AddBlockedWords_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MessagingServiceServer).AddBlockedWords(ctx, req.(*AddBlockedWordsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var MessagingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "marketchat.v1.MessagingService",
	HandlerType: (*MessagingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SendMessage", Handler: _MessagingService_SendMessage_Handler},
		{MethodName: "GetMessages", Handler: _MessagingService_GetMessages_Handler},
		{MethodName: "CheckDraft", Handler: _MessagingService_CheckDraft_Handler},
		{MethodName: "SearchMessages", Handler: _MessagingService_SearchMessages_Handler},
		{MethodName: "AddBlockedWords", Handler: _MessagingService_AddBlockedWords_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "marketchat/v1/messaging.proto",
}
