package server

import (
	"marketchat/auth"
	pb "marketchat/proto/marketchat"

	"google.golang.org/grpc"
)

// Rules lists the methods reachable without a token and those reserved to moderators.
var Rules = auth.MethodRules{
	Public: map[string]struct{}{
		pb.AuthService_Register_FullMethodName:        {},
		pb.AuthService_Login_FullMethodName:           {},
		pb.MessagingService_CheckDraft_FullMethodName: {},
	},
	AdminOnly: map[string]struct{}{
		pb.MessagingService_AddBlockedWords_FullMethodName: {},
		pb.MessagingService_SearchMessages_FullMethodName:  {},
	},
}

// New builds a gRPC server with authentication and both services registered.
// Interceptors chained through opts run before authentication.
func New(issuer auth.TokenIssuer, messaging *MessagingServer, authServer *AuthServer, opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ChainUnaryInterceptor(auth.UnaryInterceptor(issuer, Rules)))
	s := grpc.NewServer(opts...)
	pb.RegisterMessagingServiceServer(s, messaging)
	pb.RegisterAuthServiceServer(s, authServer)
	return s
}
