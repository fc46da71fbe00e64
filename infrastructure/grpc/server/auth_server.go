package server

import (
	"context"

	"marketchat/auth"
	"marketchat/errors"
	pb "marketchat/proto/marketchat"
	"marketchat/services"
)

type AuthServer struct {
	pb.UnimplementedAuthServiceServer
	authService services.IAuthService
	issuer      auth.TokenIssuer
}

// NewAuthServer creates a new gRPC server for authentication.
func NewAuthServer(authService services.IAuthService, issuer auth.TokenIssuer) *AuthServer {
	return &AuthServer{authService: authService, issuer: issuer}
}

func (s *AuthServer) Register(_ context.Context, in *pb.RegisterRequest) (*pb.AuthResponse, error) {
	token, err := s.authService.Register(in.Email, in.Password)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return s.response(token)
}

// Login verifies credentials and returns a session token.
func (s *AuthServer) Login(_ context.Context, in *pb.LoginRequest) (*pb.AuthResponse, error) {
	token, err := s.authService.Login(in.Email, in.Password)
	if err != nil {
		return nil, errors.MapToGRPCError(err)
	}
	return s.response(token)
}

func (s *AuthServer) response(token services.Token) (*pb.AuthResponse, error) {
	claims, err := s.issuer.ValidateToken(token.String())
	if err != nil {
		return nil, errors.MapToGRPCError(errors.ErrTokenGeneration)
	}
	return &pb.AuthResponse{Token: token.String(), UserID: claims.UserID}, nil
}
