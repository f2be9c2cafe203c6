package agent

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	agentv1 "github.com/calderasoft/agentworker/api/gen/go/agent/v1"
	"github.com/calderasoft/agentworker/internal/testkit/enginefakes"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func startWorkerServer(t *testing.T, svc *Service) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	grpcServer := grpc.NewServer()
	agentv1.RegisterAgentWorkerServer(grpcServer, svc)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- grpcServer.Serve(listener)
	}()
	t.Cleanup(func() {
		grpcServer.GracefulStop()
		_ = listener.Close()
		select {
		case <-serveErr:
		case <-time.After(2 * time.Second):
		}
	})

	return listener.Addr().String()
}

func dialWorkerServer(t *testing.T, addr string) agentv1.AgentWorkerClient {
	t.Helper()

	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial worker server: %v", err)
	}
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return agentv1.NewAgentWorkerClient(conn)
}

func TestSessionOverWire(t *testing.T) {
	eng := enginefakes.NewEngine()
	sess := enginefakes.NewSession()
	sess.Emit(initMessage("sess-wire"))
	sess.Emit(resultMessage("sess-wire"))
	eng.Enqueue(sess)

	svc, registry := newTestService(eng)
	addr := startWorkerServer(t, svc)
	client := dialWorkerServer(t, addr)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := client.Session(ctx)
	if err != nil {
		t.Fatalf("open session: %v", err)
	}

	handshake, err := stream.Recv()
	if err != nil {
		t.Fatalf("recv handshake: %v", err)
	}
	if handshake.GetEvent() != nil {
		t.Fatalf("handshake must carry no variant, got %v", handshake)
	}

	if err := stream.Send(createInput("hello")); err != nil {
		t.Fatalf("send create: %v", err)
	}

	init, err := stream.Recv()
	if err != nil {
		t.Fatalf("recv init: %v", err)
	}
	if init.GetSessionInit().GetSessionId() != "sess-wire" {
		t.Fatalf("expected session init, got %v", init)
	}

	result, err := stream.Recv()
	if err != nil {
		t.Fatalf("recv result: %v", err)
	}
	if result.GetResult().GetSessionId() != "sess-wire" {
		t.Fatalf("expected result, got %v", result)
	}

	if err := stream.CloseSend(); err != nil {
		t.Fatalf("close send: %v", err)
	}
	if _, err := stream.Recv(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF after close, got %v", err)
	}

	// Teardown is asynchronous with the client-side EOF.
	deadline := time.Now().Add(2 * time.Second)
	for registry.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("session not removed, registry len = %d", registry.Len())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestInterruptOverWire(t *testing.T) {
	svc, registry := newTestService(enginefakes.NewEngine())
	sess := enginefakes.NewSession()
	registry.Register("sess-int", sess)

	addr := startWorkerServer(t, svc)
	client := dialWorkerServer(t, addr)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := client.Interrupt(ctx, &agentv1.InterruptRequest{SessionId: "sess-int"})
	if err != nil {
		t.Fatalf("interrupt: %v", err)
	}
	if !res.GetSuccess() {
		t.Fatal("expected interrupt success")
	}
}

func TestHealthOverWire(t *testing.T) {
	svc, _ := newTestService(enginefakes.NewEngine())
	addr := startWorkerServer(t, svc)
	client := dialWorkerServer(t, addr)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := client.Health(ctx, &agentv1.HealthRequest{})
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if !res.GetReady() || res.GetWorkerVersion() != Version {
		t.Fatalf("unexpected health response: %v", res)
	}
}
