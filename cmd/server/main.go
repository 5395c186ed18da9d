package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"oxide/config"
	"oxide/internal/api"
	"oxide/internal/proto"
	"oxide/internal/storage"
	"oxide/pkg/logx"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logx.Init(true)
		logx.Fatal(err, "failed to load config")
	}
	logx.Init(cfg.IsDevelopment())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.StoreTimeout)
	if err != nil {
		logx.Fatal(err, "failed to connect to store", "uri", cfg.MongoURI)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			logx.Error(err, "failed to close store")
		}
	}()

	handler := initializeChatHandler(store)

	interceptors := api.NewInterceptors(rate.Limit(10), 20)
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(interceptors.Unary()),
		grpc.StreamInterceptor(interceptors.Stream()),
	)
	proto.RegisterChatServiceServer(grpcServer, handler)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		logx.Fatal(err, "failed to listen", "port", cfg.Port)
	}

	go serveHTTP(ctx, cfg, grpcServer)

	go func() {
		<-ctx.Done()
		logx.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	logx.Info("starting gRPC server", "port", cfg.Port)
	if err := grpcServer.Serve(lis); err != nil {
		logx.Fatal(err, "failed to serve")
	}
}
