// Package proxymsgv1 contains hand-maintained bindings for the proxy-hosted
// private message receiver (proxymsg.v1). Backend services push one-way
// private messages to the proxy through this API; the response is an
// acknowledgment with no payload. Messages travel as JSON bodies over gRPC
// using the platform json codec.
package proxymsgv1

import (
	"context"

	"github.com/emberhollow/proxy/internal/platform/grpc/jsoncodec"
	"google.golang.org/grpc"
)

const fullMethodReceiveMessage = "/proxymsg.v1.ProxyMessageService/ReceiveMessage"

// PrivateMessage is one inbound whisper addressed to a player on this proxy.
type PrivateMessage struct {
	SenderUsername string `json:"sender_username"`
	ReceiverID     string `json:"receiver_id"`
	Message        string `json:"message"`
}

// ReceiveMessageResponse acknowledges receipt.
type ReceiveMessageResponse struct{}

// ProxyMessageServiceClient is the client API for proxymsg.v1.ProxyMessageService.
type ProxyMessageServiceClient interface {
	ReceiveMessage(ctx context.Context, in *PrivateMessage, opts ...grpc.CallOption) (*ReceiveMessageResponse, error)
}

type proxyMessageServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewProxyMessageServiceClient creates a message client on the given connection.
func NewProxyMessageServiceClient(cc grpc.ClientConnInterface) ProxyMessageServiceClient {
	return &proxyMessageServiceClient{cc: cc}
}

func (c *proxyMessageServiceClient) ReceiveMessage(ctx context.Context, in *PrivateMessage, opts ...grpc.CallOption) (*ReceiveMessageResponse, error) {
	out := new(ReceiveMessageResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(jsoncodec.Name)}, opts...)
	if err := c.cc.Invoke(ctx, fullMethodReceiveMessage, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ProxyMessageServiceServer is the server API for proxymsg.v1.ProxyMessageService.
type ProxyMessageServiceServer interface {
	ReceiveMessage(ctx context.Context, in *PrivateMessage) (*ReceiveMessageResponse, error)
}

// RegisterProxyMessageServiceServer registers the service implementation with
// a gRPC server.
func RegisterProxyMessageServiceServer(s grpc.ServiceRegistrar, srv ProxyMessageServiceServer) {
	s.RegisterService(&proxyMessageServiceDesc, srv)
}

func receiveMessageHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PrivateMessage)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ProxyMessageServiceServer).ReceiveMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: fullMethodReceiveMessage,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ProxyMessageServiceServer).ReceiveMessage(ctx, req.(*PrivateMessage))
	}
	return interceptor(ctx, in, info, handler)
}

var proxyMessageServiceDesc = grpc.ServiceDesc{
	ServiceName: "proxymsg.v1.ProxyMessageService",
	HandlerType: (*ProxyMessageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ReceiveMessage",
			Handler:    receiveMessageHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/grpc/proxymsgv1",
}
