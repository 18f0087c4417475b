package advisor

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// ServiceName is the fully qualified gRPC service name
	ServiceName = "battleship.v1.Advisor"
	// BestMoveMethod is the full method path of BestMove
	BestMoveMethod = "/" + ServiceName + "/BestMove"
)

// AdvisorServer is the server API for the Advisor service. Messages are
// google.protobuf.Struct values laid out as described in messages.go.
type AdvisorServer interface {
	BestMove(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc is the grpc.ServiceDesc for the Advisor service
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AdvisorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "BestMove",
			Handler:    bestMoveHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "battleship/v1/advisor.proto",
}

// RegisterAdvisorServer registers srv with a gRPC server
func RegisterAdvisorServer(s grpc.ServiceRegistrar, srv AdvisorServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func bestMoveHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdvisorServer).BestMove(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: BestMoveMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdvisorServer).BestMove(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
