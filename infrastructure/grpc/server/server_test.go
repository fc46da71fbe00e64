package server_test

import (
	"context"
	"log/slog"
	"net"
	"testing"
	"time"

	"marketchat/auth"
	"marketchat/infrastructure/grpc/server"
	"marketchat/moderation"
	pb "marketchat/proto/marketchat"
	"marketchat/repositories"
	"marketchat/services"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

const password = "ComplexPass123!"

type testClients struct {
	messaging pb.MessagingServiceClient
	auth      pb.AuthServiceClient
}

func startServer(t *testing.T) testClients {
	t.Helper()
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	req.NoError(err)
	t.Cleanup(func() { _ = writer.Close() })

	issuer := auth.NewTokenIssuer("e2e-secret", time.Hour)
	authService := services.NewAuthService(log, repositories.NewUserRepository(db), issuer, nil)
	req.NoError(authService.SeedAdmin("mod@example.com", password))
	messagingService := services.NewMessagingService(log, moderation.RedactPolicy{}, nil, '*',
		repositories.NewMessageRepository(db, log, lo.ToPtr(50)),
		repositories.NewBlocklistRepository(db, log),
		repositories.NewSearchIndex(writer, log),
		nil)

	lis := bufconn.Listen(1 << 20)
	srv := server.New(issuer, server.NewMessagingServer(log, messagingService), server.NewAuthServer(authService, issuer))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		pb.DialOption(),
	)
	req.NoError(err)
	t.Cleanup(func() { _ = conn.Close() })

	return testClients{messaging: pb.NewMessagingServiceClient(conn), auth: pb.NewAuthServiceClient(conn)}
}

func withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func TestMarketChat_EndToEnd(t *testing.T) {
	req := require.New(t)
	clients := startServer(t)
	ctx := context.Background()

	buyer, err := clients.auth.Register(ctx, &pb.RegisterRequest{Email: "buyer@example.com", Password: password})
	req.NoError(err)
	req.NotEmpty(buyer.UserID)
	seller, err := clients.auth.Register(ctx, &pb.RegisterRequest{Email: "seller@example.com", Password: password})
	req.NoError(err)
	moderator, err := clients.auth.Login(ctx, &pb.LoginRequest{Email: "MOD@example.com", Password: password})
	req.NoError(err)

	t.Run("registering the admin email grants nothing", func(t *testing.T) {
		_, err := clients.auth.Register(ctx, &pb.RegisterRequest{Email: `"mod@example.com"`, Password: password})
		require.Equal(t, codes.AlreadyExists, status.Code(err))
	})

	t.Run("duplicate registration", func(t *testing.T) {
		_, err := clients.auth.Register(ctx, &pb.RegisterRequest{Email: "buyer@example.com", Password: password})
		require.Equal(t, codes.AlreadyExists, status.Code(err))
	})

	t.Run("login", func(t *testing.T) {
		res, err := clients.auth.Login(ctx, &pb.LoginRequest{Email: "buyer@example.com", Password: password})
		require.NoError(t, err)
		require.Equal(t, buyer.UserID, res.UserID)

		_, err = clients.auth.Login(ctx, &pb.LoginRequest{Email: "buyer@example.com", Password: "WrongPass123!"})
		require.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("draft check is public", func(t *testing.T) {
		res, err := clients.messaging.CheckDraft(ctx, &pb.CheckDraftRequest{Text: "ارسل لي الموقع"})
		require.NoError(t, err)
		require.True(t, res.Forbidden)
		require.Equal(t, "الموقع", res.Word)
	})

	conversation := func(content string) *pb.SendMessageRequest {
		return &pb.SendMessageRequest{AdID: "ad-1", BuyerID: buyer.UserID, SellerID: seller.UserID, Content: content}
	}

	t.Run("sending requires a token", func(t *testing.T) {
		_, err := clients.messaging.SendMessage(ctx, conversation("hello"))
		require.Equal(t, codes.Unauthenticated, status.Code(err))
	})

	t.Run("sender must take part in the conversation", func(t *testing.T) {
		_, err := clients.messaging.SendMessage(withToken(moderator.Token), conversation("hello"))
		require.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("empty message is refused", func(t *testing.T) {
		_, err := clients.messaging.SendMessage(withToken(buyer.Token), conversation("   "))
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("contact details are redacted", func(t *testing.T) {
		req := require.New(t)
		res, err := clients.messaging.SendMessage(withToken(buyer.Token), conversation("كلمني 0551234567"))
		req.NoError(err)
		req.Equal("كلمني "+moderation.TagPhone, res.Content)
		req.True(res.Redacted)
		req.Equal(buyer.UserID, res.Author)

		list, err := clients.messaging.GetMessages(withToken(seller.Token), &pb.GetMessagesRequest{
			AdID: "ad-1", BuyerID: buyer.UserID, SellerID: seller.UserID,
		})
		req.NoError(err)
		req.Len(list.Messages, 1)
		req.Equal(res.MessageID, list.Messages[0].MessageID)
	})

	t.Run("blocklist is admin only", func(t *testing.T) {
		_, err := clients.messaging.AddBlockedWords(withToken(buyer.Token), &pb.AddBlockedWordsRequest{Words: []string{"telegram"}})
		require.Equal(t, codes.PermissionDenied, status.Code(err))
	})

	t.Run("blocked words are censored once added", func(t *testing.T) {
		req := require.New(t)
		added, err := clients.messaging.AddBlockedWords(withToken(moderator.Token), &pb.AddBlockedWordsRequest{Words: []string{"telegram"}})
		req.NoError(err)
		req.Equal(1, added.Added)

		res, err := clients.messaging.SendMessage(withToken(seller.Token), conversation("telegram please"))
		req.NoError(err)
		req.Equal("******** please", res.Content)
	})

	t.Run("moderators search redacted content", func(t *testing.T) {
		search := &pb.SearchMessagesRequest{AdID: "ad-1", BuyerID: buyer.UserID, SellerID: seller.UserID, Terms: "please"}

		_, err := clients.messaging.SearchMessages(withToken(buyer.Token), search)
		require.Equal(t, codes.PermissionDenied, status.Code(err))

		require.Eventually(t, func() bool {
			res, err := clients.messaging.SearchMessages(withToken(moderator.Token), search)
			return err == nil && len(res.Hits) == 1 && res.Hits[0].Author == seller.UserID
		}, 2*time.Second, 20*time.Millisecond)
	})
}
